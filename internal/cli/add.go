// Implements: prd003-typekit-cli (R4: type declaration commands).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proptypes/pkg/types"
)

func newAddEnumCmd() *cobra.Command {
	var (
		values  []string
		asFlags bool
		storage string
	)

	cmd := &cobra.Command{
		Use:   "add-enum <name>",
		Short: "Declare a new enum type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "" {
				return types.ErrInvalidName
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if s.reg.FindTypeByName(name) != nil {
				return fmt.Errorf("type %q: %w", name, types.ErrDuplicateName)
			}

			if storage != "string" && storage != "int" {
				return fmt.Errorf("storage %q: %w", storage, types.ErrInvalidStorageType)
			}

			e := types.NewEnumType(name)
			e.Values = values
			e.ValuesAsFlags = asFlags
			e.StorageType = types.StorageTypeFromString(storage)
			if err := e.Validate(); err != nil {
				return fmt.Errorf("type %q: %w", name, err)
			}

			s.reg.Add(e)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added enum %s (id %d)\n", name, e.ID())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&values, "values", nil, "comma-separated value names, in order")
	cmd.Flags().BoolVar(&asFlags, "flags", false, "store values as a bitmask, enabling multi-selection")
	cmd.Flags().StringVar(&storage, "storage", "string", "external storage form: string or int")
	return cmd
}

func newAddClassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-class <name>",
		Short: "Declare a new class type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "" {
				return types.ErrInvalidName
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if s.reg.FindTypeByName(name) != nil {
				return fmt.Errorf("type %q: %w", name, types.ErrDuplicateName)
			}

			c := types.NewClassType(name)
			s.reg.Add(c)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added class %s (id %d)\n", name, c.ID())
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a declared type",
		Long: "Remove a declared type. Values and members referencing it degrade\n" +
			"to untyped; they are not rewritten.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			if !s.reg.RemoveByName(args[0]) {
				return fmt.Errorf("type %q: %w", args[0], types.ErrTypeNotFound)
			}
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}
