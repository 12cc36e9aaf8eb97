package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keycalc/internal/domain"
)

// press <keys...>: apply keys to a session in order.
func pressCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "press <key>...",
		Aliases: []string{"key"},
		Short:   "Press keys on a session and print the display",
		Example: `  keycalc press 5 + 3 = =
  keycalc key AC`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSession(cmd, true)
			if err != nil {
				return err
			}

			var display domain.DisplayState
			for _, k := range args {
				display, err = wire.Keypad.SubmitKey(cmd.Context(), id, domain.Key(k))
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatDisplay(display))
			return nil
		},
	}
}
