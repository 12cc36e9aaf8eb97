package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a complete expression",
		Long: `Evaluate a complete expression and print the result.

An expression starting with a minus sign must follow "--" so that it is
not read as a flag.`,
		Example: `  keycalc eval '3+4*2'
  keycalc eval 10 ÷ 4
  keycalc eval -- -5+3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := wire.Keypad.Evaluate(cmd.Context(), strings.Join(args, ""))
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Error")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
