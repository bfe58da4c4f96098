// Implements: prd003-typekit-cli (R2.1: init command);
//
//	prd005-configuration-directories (R1, R2).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the project type store",
		Long:  "Create configuration and data directories and an empty property type document.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized project %s in %s\n",
				s.store.ProjectID(), s.dir)
			return nil
		},
	}
}
