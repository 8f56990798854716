package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/databricks/databricks-jdbc/pkg/propagate"
)

// NewCurrentCmd returns the current command.
func NewCurrentCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the version each file currently carries",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			root, targets, err := args.plan(cc)
			if err != nil {
				return err
			}

			report, err := propagate.New(root,
				propagate.WithLogger(args.logger),
				propagate.WithTargets(targets),
			).Current(cc.Context())
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.HiddenBorder()).
				Headers("TARGET", "PATH", "VERSION")

			for i, res := range report.Results {
				v := res.Previous
				if !res.Matched() {
					v = "<not found>"
				}

				t.Row(targets[i].Name, res.Path, v)
			}

			fmt.Fprintln(cc.OutOrStdout(), t.Render())

			return nil
		},
	}
}
