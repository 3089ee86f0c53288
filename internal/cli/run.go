package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/keelframe/keel/world"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Frames int
}

// runReport is the serializable final state of a demo run.
type runReport struct {
	Workload string         `json:"workload" yaml:"workload"`
	Frames   int            `json:"frames" yaml:"frames"`
	Tick     int64          `json:"tick" yaml:"tick"`
	Entities []entityReport `json:"entities" yaml:"entities"`
}

type entityReport struct {
	ID       uint64 `json:"id" yaml:"id"`
	Position coords `json:"position" yaml:"position"`
	Velocity coords `json:"velocity" yaml:"velocity"`
}

type coords struct {
	X int64 `json:"x" yaml:"x"`
	Y int64 `json:"y" yaml:"y"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo workload and print the final world state",
		Long: `Run the demo workload for a number of frames against a fresh world and
print the final entity state. Each frame is one sequential workload run;
the run stops early if any system fails.

Example:
  keel run --frames 5
  keel run --frames 5 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Frames, "frames", 3, "number of frames to simulate")

	return cmd
}

func runDemo(opts *RunOptions, cmd *cobra.Command) error {
	if opts.Frames < 1 {
		return WrapExitError(ExitCommandError, "frames must be at least 1", nil)
	}

	wl, err := newDemoWorkload()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build demo workload", err)
	}

	w := newDemoWorld()
	for frame := 0; frame < opts.Frames; frame++ {
		if err := wl.Run(w); err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("frame %d failed", frame+1), err)
		}
	}

	report := runReport{Workload: wl.Name(), Frames: opts.Frames}
	if tk, ok := world.GetUnique[tick](w); ok {
		report.Tick = tk.Frame
	}
	world.Each(w, func(id world.EntityID, p position) {
		report.Entities = append(report.Entities, entityReport{
			ID:       uint64(id),
			Position: coords{X: p.X, Y: p.Y},
		})
	})
	for i := range report.Entities {
		if v, ok := world.Get[velocity](w, world.EntityID(report.Entities[i].ID)); ok {
			report.Entities[i].Velocity = coords{X: v.DX, Y: v.DY}
		}
	}

	return emit(cmd.OutOrStdout(), opts.Format, report, func(out io.Writer) {
		renderRunText(out, report)
	})
}

func renderRunText(w io.Writer, report runReport) {
	fmt.Fprintf(w, "workload: %s\n", report.Workload)
	fmt.Fprintf(w, "frames: %d\n", report.Frames)
	fmt.Fprintf(w, "tick: %d\n", report.Tick)
	fmt.Fprintln(w, "entities:")
	for _, e := range report.Entities {
		fmt.Fprintf(w, "  %d position=(%d,%d) velocity=(%d,%d)\n",
			e.ID, e.Position.X, e.Position.Y, e.Velocity.X, e.Velocity.Y)
	}
}
