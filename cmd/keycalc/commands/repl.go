package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"keycalc/internal/domain"
	"keycalc/internal/services/session"
)

// presser submits one key and returns the new display.
type presser func(domain.Key) (domain.DisplayState, error)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Drive a session interactively",
		Long: `Drive a session one keystroke at a time.

On a terminal every keystroke is a key: digits . + - * / % as printed,
Enter or = for equals, Backspace or c for C, a or Esc for AC, n or ~ for +/-.
q or Ctrl-C quits. Otherwise stdin is read line by line, each line holding
space separated keys, and the display is printed after every line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSession(cmd, true)
			if err != nil {
				return err
			}

			press := func(k domain.Key) (domain.DisplayState, error) {
				return wire.Keypad.SubmitKey(cmd.Context(), id, k)
			}
			if wire.IsRemote() {
				st, err := wire.Remote.Stream(cmd.Context(), id)
				if err != nil {
					return err
				}
				defer st.Close()
				press = st.Press
			}

			display, err := wire.Keypad.Display(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return rawLoop(f, out, display, press)
			}
			return lineLoop(cmd.InOrStdin(), out, press)
		},
	}
}

func rawLoop(f *os.File, out io.Writer, display domain.DisplayState, press presser) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	render := func(d domain.DisplayState) { fmt.Fprintf(out, "\r\033[K%s", formatDisplay(d)) }
	render(display)

	buf := make([]byte, 1)
	for {
		if _, err := f.Read(buf); err != nil {
			fmt.Fprint(out, "\r\n")
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		key, quit := keyForByte(buf[0])
		if quit {
			fmt.Fprint(out, "\r\n")
			return nil
		}
		if key == "" {
			continue
		}
		d, err := press(key)
		if err != nil && !errors.Is(err, session.ErrUnknownKey) {
			fmt.Fprint(out, "\r\n")
			return err
		}
		render(d)
	}
}

func lineLoop(in io.Reader, out io.Writer, press presser) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "q" {
			return nil
		}

		var display domain.DisplayState
		for _, f := range fields {
			d, err := press(domain.Key(f))
			if errors.Is(err, session.ErrUnknownKey) {
				fmt.Fprintf(out, "unknown key %q\n", f)
			} else if err != nil {
				return err
			}
			display = d
		}
		fmt.Fprintln(out, formatDisplay(display))
	}
	return sc.Err()
}

// keyForByte maps a raw-mode keystroke to a keypad key. An empty key means
// the byte is ignored.
func keyForByte(b byte) (key domain.Key, quit bool) {
	if b >= '0' && b <= '9' {
		return domain.Key(string(b)), false
	}
	switch b {
	case '.', '+', '-', '*', '/', '%', '=':
		return domain.Key(string(b)), false
	case '\r', '\n':
		return "Enter", false
	case 0x7f, 0x08, 'c', 'C':
		return "Backspace", false
	case 0x1b, 'a':
		return "AC", false
	case 'n', 'N', '~':
		return "+/-", false
	case 'q', 'Q', 0x03, 0x04:
		return "", true
	}
	return "", false
}
