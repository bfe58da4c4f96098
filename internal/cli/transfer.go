// Export and import of type documents between projects.
// Implements: prd003-typekit-cli (R10: document transfer).
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proptypes/internal/store"
	"github.com/mesh-intelligence/proptypes/pkg/types"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the declared types to an external document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			records := s.reg.ToVariant(filepath.Dir(path))
			if err := store.WriteDocument(path, records); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d types to %s\n", s.reg.Len(), path)
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge types from an external document",
		Long: "Merge the types declared in an external document. Types whose\n" +
			"name already exists are skipped; the rest are added with fresh\n" +
			"ids.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			records, err := store.ReadDocument(path)
			if err != nil {
				return err
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			incoming := types.NewRegistry()
			incoming.LoadFrom(records, filepath.Dir(path))

			added := s.reg.Merge(incoming)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d types from %s\n",
				added, incoming.Len(), path)
			return nil
		},
	}
}
