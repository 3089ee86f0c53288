package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// planReport is the serializable form of a workload's static analysis.
type planReport struct {
	Workload string         `json:"workload" yaml:"workload"`
	Batches  [][]string     `json:"batches" yaml:"batches"`
	Systems  []systemReport `json:"systems" yaml:"systems"`
}

type systemReport struct {
	Name     string         `json:"name" yaml:"name"`
	Accesses []accessReport `json:"accesses" yaml:"accesses"`
}

type accessReport struct {
	Storage string `json:"storage" yaml:"storage"`
	Mode    string `json:"mode" yaml:"mode"`
}

// NewPlanCommand creates the plan command.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the demo workload's static batch plan",
		Long: `Show which demo systems could run side by side, computed purely from
their declared storage accesses. Per-system requirements are recomputed
through each system's generator, the same instance-independent path an
external scheduler would use.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := newDemoWorkload()
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to build demo workload", err)
			}

			report := planReport{
				Workload: wl.Name(),
				Batches:  wl.Plan().Batches,
			}
			for _, req := range wl.Requirements() {
				sr := systemReport{Name: req.System}
				for _, in := range req.Accesses {
					sr.Accesses = append(sr.Accesses, accessReport{
						Storage: in.Storage.TypeName(),
						Mode:    in.Mode.String(),
					})
				}
				report.Systems = append(report.Systems, sr)
			}

			return emit(cmd.OutOrStdout(), rootOpts.Format, report, func(w io.Writer) {
				renderPlanText(w, report)
			})
		},
	}
	return cmd
}

func renderPlanText(w io.Writer, report planReport) {
	fmt.Fprintf(w, "workload: %s\n", report.Workload)
	for i, batch := range report.Batches {
		fmt.Fprintf(w, "batch %d:\n", i+1)
		for _, name := range batch {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	fmt.Fprintln(w, "systems:")
	for _, sr := range report.Systems {
		fmt.Fprintf(w, "  %s\n", sr.Name)
		for _, ar := range sr.Accesses {
			fmt.Fprintf(w, "    %s %s\n", ar.Mode, ar.Storage)
		}
	}
}
