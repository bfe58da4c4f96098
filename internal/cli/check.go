// Implements: prd003-typekit-cli (R9: check command).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the declared type set",
		Long: "Report duplicate type names and flag enums wider than their\n" +
			"bitmask. Findings exit non-zero; the type set itself is left\n" +
			"untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			problems := s.reg.Check()
			if len(problems) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d types, no problems\n", s.reg.Len())
				return nil
			}

			for _, p := range problems {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return fmt.Errorf("%d problem(s) found", len(problems))
		},
	}
}
