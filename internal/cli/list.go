// Implements: prd003-typekit-cli (R3: list command).
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proptypes/pkg/types"
)

func newListCmd() *cobra.Command {
	var kindFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the declared property types",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind types.Kind
			switch kindFilter {
			case "":
				kind = types.KindInvalid // no filter
			case "enum":
				kind = types.KindEnum
			case "class":
				kind = types.KindClass
			default:
				return fmt.Errorf("unknown kind %q (want enum or class)", kindFilter)
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			rows, err := s.store.ListTypes(kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.jsonMode {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%d\t%s\t%s\n", row.ID, row.Kind, row.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFilter, "kind", "", "filter by kind: enum or class")
	return cmd
}
