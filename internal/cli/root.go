// Package cli implements the typekit command-line interface.
// Implements: prd003-typekit-cli (R1: Root command structure, R6: Global
// flags, R7: Exit codes, R8: Output modes);
//
//	docs/ARCHITECTURE § System Components.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes (prd003-typekit-cli R7).
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "typekit" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "typekit",
		Short: "Manage custom property types for a project",
		Long: "Typekit manages the custom property types of a project: enums,\n" +
			"classes, and the documents they are declared in.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	// Global persistent flags (prd003-typekit-cli R6).
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .typekit-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newAddEnumCmd())
	root.AddCommand(newAddClassCmd())
	root.AddCommand(newAddMemberCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
