package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/skelly/internal/scaffold"
	"github.com/skelly-dev/skelly/internal/skeleton"
)

var inputsJSON bool

func init() {
	inputsCmd.Flags().BoolVar(&inputsJSON, "json", false, "Print inputs as JSON")
	rootCmd.AddCommand(inputsCmd)
}

var inputsCmd = &cobra.Command{
	Use:   "inputs <skeleton>",
	Short: "List the inputs a skeleton declares",
	Long: `Load a skeleton's config and list its declared inputs with their
defaults and allowed options. Inputs without a default are required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := scaffold.Describe(nil, args[0])
		if err != nil {
			return err
		}

		if inputsJSON {
			return printInputsJSON(cmd, cfg)
		}

		if len(cfg.Inputs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No inputs declared.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tDEFAULT\tOPTIONS\tDESCRIPTION")
		for _, in := range cfg.Inputs {
			def := "(required)"
			if in.Default != nil {
				def = *in.Default
			}
			opts := "-"
			if len(in.Options) > 0 {
				opts = strings.Join(in.Options, ", ")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", in.Name, def, opts, in.Description)
		}
		return w.Flush()
	},
}

type inputJSON struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Default     *string  `json:"default"`
	Options     []string `json:"options,omitempty"`
	Required    bool     `json:"required"`
}

func printInputsJSON(cmd *cobra.Command, cfg *skeleton.Config) error {
	list := make([]inputJSON, 0, len(cfg.Inputs))
	for _, in := range cfg.Inputs {
		list = append(list, inputJSON{
			Name:        in.Name,
			Description: in.Description,
			Default:     in.Default,
			Options:     in.Options,
			Required:    !in.HasDefault(),
		})
	}
	out, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling inputs: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
