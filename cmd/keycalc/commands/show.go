package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print what a session displays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSession(cmd, false)
			if err != nil {
				return err
			}
			display, err := wire.Keypad.Display(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatDisplay(display))

			if raw {
				if wire.IsRemote() {
					return fmt.Errorf("--raw is only available for local sessions")
				}
				sess, ok, err := wire.Sessions.LoadSession(id)
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintf(cmd.OutOrStdout(), "input: %q pending: %t\n", sess.RawInput, sess.ResultPending)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "also print the stored input of a local session")
	return cmd
}
