// Implements: prd003-typekit-cli (R5: member editing, cycle refusal).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proptypes/pkg/types"
)

func newAddMemberCmd() *cobra.Command {
	var defaultLiteral string

	cmd := &cobra.Command{
		Use:   "add-member <class> <member> <type>",
		Short: "Add a member to a class type",
		Long: "Add a member to a class. <type> is either the name of a declared\n" +
			"type or a generic kind: string, int, float, bool, file, color,\n" +
			"object. Additions that would make a class contain itself are\n" +
			"refused.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			className, memberName, typeSpec := args[0], args[1], args[2]

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			class, ok := s.reg.FindTypeByName(className).(*types.ClassType)
			if !ok {
				return fmt.Errorf("class %q: %w", className, types.ErrTypeNotFound)
			}

			value, err := memberDefault(s.reg, class, typeSpec, defaultLiteral)
			if err != nil {
				return err
			}
			if err := class.AddMember(memberName, value); err != nil {
				return fmt.Errorf("member %q: %w", memberName, err)
			}
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added member %s.%s\n", className, memberName)
			return nil
		},
	}

	cmd.Flags().StringVar(&defaultLiteral, "default", "", "default value literal")
	return cmd
}

// memberDefault builds the default value for a new member. A declared
// type name takes precedence over the generic kind tokens; the cycle
// check runs before a declared type becomes a member.
func memberDefault(reg *types.Registry, class *types.ClassType, typeSpec, literal string) (any, error) {
	if declared := reg.FindTypeByName(typeSpec); declared != nil {
		if !class.CanAddMemberOfType(declared, reg) {
			return nil, fmt.Errorf("member of type %q: %w", typeSpec, types.ErrCyclicReference)
		}
		ctx := types.NewExportContext(reg, "")
		if literal != "" {
			return declared.ToPropertyValue(ctx.ToPropertyValueKind(literal, types.TypeNameString), ctx), nil
		}
		return declared.Wrap(declared.DefaultValue()), nil
	}

	switch typeSpec {
	case types.TypeNameString, types.TypeNameInt, types.TypeNameFloat,
		types.TypeNameBool, types.TypeNameFile, types.TypeNameColor,
		types.TypeNameObject:
		ctx := types.NewExportContext(reg, "")
		return ctx.ToPropertyValueKind(literal, typeSpec), nil
	default:
		return nil, fmt.Errorf("type %q: %w", typeSpec, types.ErrTypeNotFound)
	}
}
