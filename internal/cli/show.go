// Implements: prd003-typekit-cli (R3.2: show command).
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proptypes/pkg/types"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one declared type in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			t := s.reg.FindTypeByName(args[0])
			if t == nil {
				return fmt.Errorf("type %q: %w", args[0], types.ErrTypeNotFound)
			}

			ctx := types.NewExportContext(s.reg, s.dir)
			record := t.ToVariant(ctx)

			out := cmd.OutOrStdout()
			if flags.jsonMode {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(record)
			}

			fmt.Fprintf(out, "id:   %d\nkind: %s\nname: %s\n", t.ID(), t.Kind(), t.Name())
			switch concrete := t.(type) {
			case *types.EnumType:
				fmt.Fprintf(out, "storage: %s\nflags: %v\nvalues: %v\n",
					concrete.StorageType, concrete.ValuesAsFlags, concrete.Values)
			case *types.ClassType:
				for _, m := range concrete.Members() {
					fmt.Fprintf(out, "member: %s = %v\n", m.Name, m.Value)
				}
			}
			return nil
		},
	}
}
