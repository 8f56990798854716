package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/databricks/databricks-jdbc/pkg/relver"
)

// NewValidateCmd returns the validate command.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [version]",
		Short: "Check that a version has the form major.minor.patch-qualifier",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			v, err := targetVersion(posArgs)
			if err != nil {
				return err
			}

			if err := relver.Check(v); err != nil {
				return err
			}

			fmt.Fprintf(cc.OutOrStdout(), "%s is valid\n", v)

			return nil
		},
	}
}
