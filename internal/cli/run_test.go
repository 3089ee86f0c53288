package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TextGolden(t *testing.T) {
	out, err := executeCommand(t, "run")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "run_text", []byte(out))
}

func TestRun_JSONStateAfterFiveFrames(t *testing.T) {
	out, err := executeCommand(t, "run", "--frames", "5", "--format", "json")
	require.NoError(t, err)

	var report runReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "demo", report.Workload)
	assert.Equal(t, 5, report.Frames)
	assert.Equal(t, int64(5), report.Tick)

	// One entity per frame until the cap: three entities total. Entity k
	// is spawned on frame k with velocity (k, -k) and integrates on frames
	// k..5, so it has moved 5-k+1 times.
	require.Len(t, report.Entities, 3)
	assert.Equal(t, entityReport{
		ID:       1,
		Position: coords{X: 5, Y: -5},
		Velocity: coords{X: 1, Y: -1},
	}, report.Entities[0])
	assert.Equal(t, entityReport{
		ID:       2,
		Position: coords{X: 8, Y: -8},
		Velocity: coords{X: 2, Y: -2},
	}, report.Entities[1])
	assert.Equal(t, entityReport{
		ID:       3,
		Position: coords{X: 9, Y: -9},
		Velocity: coords{X: 3, Y: -3},
	}, report.Entities[2])
}

func TestRun_RejectsNonPositiveFrames(t *testing.T) {
	_, err := executeCommand(t, "run", "--frames", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRun_FreshWorldPerInvocation(t *testing.T) {
	// Two invocations must not share state: the spawner cap and tick start
	// over each time.
	first, err := executeCommand(t, "run", "--format", "json")
	require.NoError(t, err)
	second, err := executeCommand(t, "run", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
