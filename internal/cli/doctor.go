package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/skelly/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor <skeleton>",
	Short: "Health check for a skeleton",
	Long: `Check a skeleton without writing anything: the config must be valid, the
running version must satisfy its requires constraint, and every template must
render with sample inputs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report := scaffold.Doctor(nil, args[0], buildVersion)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Skeleton check: %s\n", report.Dir)
		for _, c := range report.Checks {
			status := "[ OK ]"
			if !c.OK {
				status = "[FAIL]"
			}
			fmt.Fprintf(out, "  %s %s: %s\n", status, c.Name, c.Detail)
		}

		if n := report.Failed(); n > 0 {
			return fmt.Errorf("skeleton %s has %d problem(s)", report.Dir, n)
		}
		return nil
	},
}
