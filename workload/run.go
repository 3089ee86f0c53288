package workload

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/keelframe/keel/world"
)

// Run executes every system in declaration order against w, stopping at the
// first failure and returning it. The failing system's RunError stays in
// the chain, so callers can distinguish acquisition failures from callable
// failures with errors.As.
//
// Each run gets a UUIDv7 token; being time-sortable, tokens line up run
// logs chronologically across workloads.
func (wl *Workload) Run(w *world.World) error {
	token := uuid.Must(uuid.NewV7()).String()

	slog.Debug("workload run started",
		"workload", wl.name, "run", token, "systems", len(wl.systems))

	for i, d := range wl.systems {
		if err := d.Run(w); err != nil {
			slog.Error("workload run failed",
				"workload", wl.name, "run", token, "system", d.Name(), "index", i, "error", err)
			return fmt.Errorf("workload %q run %s: %w", wl.name, token, err)
		}
	}

	slog.Debug("workload run finished", "workload", wl.name, "run", token)
	return nil
}
