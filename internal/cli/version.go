// Implements: prd003-typekit-cli (R2.2: version command).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the typekit release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/proptypes"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the typekit version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "typekit v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
