package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelframe/keel/access"
)

type compA struct{}
type compB struct{}

func rec(storage access.StorageID, mode access.Mode) access.Info {
	return access.Info{
		Name:         storage.TypeName(),
		Storage:      storage,
		Mode:         mode,
		Transferable: true,
		Shareable:    true,
	}
}

func TestValidate_EmptyListSucceeds(t *testing.T) {
	assert.NoError(t, validateAccesses("sys", nil))
}

func TestValidate_CrossHalfExclusiveExclusive(t *testing.T) {
	// Two entries, mid = 1: the pair lands in opposite halves.
	err := validateAccesses("sys", []access.Info{
		rec(access.StorageOf[compA](), access.Exclusive),
		rec(access.StorageOf[compA](), access.Exclusive),
	})
	require.Error(t, err)
	assert.True(t, IsMultipleViewsMut(err))
	assert.False(t, IsMultipleViews(err))
}

func TestValidate_CrossHalfExclusiveShared(t *testing.T) {
	err := validateAccesses("sys", []access.Info{
		rec(access.StorageOf[compA](), access.Exclusive),
		rec(access.StorageOf[compA](), access.Shared),
	})
	require.Error(t, err)
	assert.True(t, IsMultipleViews(err))

	// Same conflict, opposite order.
	err = validateAccesses("sys", []access.Info{
		rec(access.StorageOf[compA](), access.Shared),
		rec(access.StorageOf[compA](), access.Exclusive),
	})
	require.Error(t, err)
	assert.True(t, IsMultipleViews(err))
}

func TestValidate_SharedSharedSameStorageSucceeds(t *testing.T) {
	assert.NoError(t, validateAccesses("sys", []access.Info{
		rec(access.StorageOf[compA](), access.Shared),
		rec(access.StorageOf[compA](), access.Shared),
	}))
}

func TestValidate_DistinctStoragesSucceed(t *testing.T) {
	// {Shared X, Exclusive Y}: two entries, mid = 1, no shared storage.
	assert.NoError(t, validateAccesses("sys", []access.Info{
		rec(access.StorageOf[compA](), access.Shared),
		rec(access.StorageOf[compB](), access.Exclusive),
	}))
}

func TestValidate_AllStoragesAloneSucceeds(t *testing.T) {
	assert.NoError(t, validateAccesses("sys", []access.Info{
		access.AllStoragesSentinel(),
	}))
}

func TestValidate_AllStoragesWithAnySecondEntryFails(t *testing.T) {
	second := []access.Info{
		rec(access.StorageOf[compA](), access.Shared),
		rec(access.StorageOf[compA](), access.Exclusive),
		rec(access.StorageOf[compB](), access.Shared),
	}
	for _, extra := range second {
		// Sentinel first: extra lands in the second half.
		err := validateAccesses("sys", []access.Info{access.AllStoragesSentinel(), extra})
		require.Error(t, err)
		assert.True(t, IsAllStorages(err))

		// Sentinel last: the membership scan must still find it.
		err = validateAccesses("sys", []access.Info{extra, access.AllStoragesSentinel()})
		require.Error(t, err)
		assert.True(t, IsAllStorages(err))
	}
}

func TestValidate_AllStoragesMatchesWholeRecordOnly(t *testing.T) {
	// A record on the reserved storage that is not the exact sentinel does
	// not trigger the whole-set check; it falls through to the pairwise
	// scan like any other record.
	notSentinel := access.Info{
		Name:         "custom",
		Storage:      access.AllStoragesID(),
		Mode:         access.Exclusive,
		Transferable: true,
		Shareable:    true,
	}
	err := validateAccesses("sys", []access.Info{
		notSentinel,
		rec(access.StorageOf[compA](), access.Shared),
	})
	assert.NoError(t, err)
}

func TestValidate_IntraHalfConflictNotDetected(t *testing.T) {
	// {Exclusive A, Exclusive A, Shared B, Shared B}: four entries, mid = 2.
	// Both halves are internally conflicting on A, but the cross-half scan
	// finds no storage shared between the halves, so validation passes.
	//
	// This blind spot is documented, relied-upon behavior. If this test
	// starts failing because the validator got smarter, that is a
	// compatibility break, not a fix.
	err := validateAccesses("sys", []access.Info{
		rec(access.StorageOf[compA](), access.Exclusive),
		rec(access.StorageOf[compA](), access.Exclusive),
		rec(access.StorageOf[compB](), access.Shared),
		rec(access.StorageOf[compB](), access.Shared),
	})
	assert.NoError(t, err)
}

func TestValidate_OddLengthCeilPartition(t *testing.T) {
	// Three entries: mid = 2, halves {0,1} and {2}. A conflict between
	// index 0 and index 2 crosses the partition and is detected.
	err := validateAccesses("sys", []access.Info{
		rec(access.StorageOf[compA](), access.Exclusive),
		rec(access.StorageOf[compB](), access.Shared),
		rec(access.StorageOf[compA](), access.Exclusive),
	})
	require.Error(t, err)
	assert.True(t, IsMultipleViewsMut(err))

	// A conflict between index 0 and index 1 sits inside the first half
	// and is not detected.
	err = validateAccesses("sys", []access.Info{
		rec(access.StorageOf[compA](), access.Exclusive),
		rec(access.StorageOf[compA](), access.Exclusive),
		rec(access.StorageOf[compB](), access.Shared),
	})
	assert.NoError(t, err)
}

func TestValidate_ErrorCarriesSystemAndStorage(t *testing.T) {
	err := validateAccesses("pkg.mySystem", []access.Info{
		rec(access.StorageOf[compA](), access.Exclusive),
		rec(access.StorageOf[compA](), access.Exclusive),
	})
	var ie *InvalidError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, CodeMultipleViewsMut, ie.Code)
	assert.Equal(t, "pkg.mySystem", ie.System)
	assert.Equal(t, "system.compA", ie.Storage)
	assert.Contains(t, ie.Error(), "pkg.mySystem")
}
