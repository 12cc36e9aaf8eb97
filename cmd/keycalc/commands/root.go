package commands

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"keycalc/internal/app"
	"keycalc/internal/domain"
)

// defaultSession names the local session when --session is not given.
const defaultSession = "default"

var (
	home      string
	serverURL string
	sessionID string
	wire      *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	home, serverURL, sessionID, wire = "", "", "", nil

	root := &cobra.Command{
		Use:          "keycalc",
		Short:        "Keypad calculator with persistent sessions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = os.Getenv("KEYCALC_HOME")
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".keycalc")
			}
			if serverURL == "" {
				serverURL = os.Getenv("KEYCALC_SERVER")
			}

			w, err := app.NewWire(app.Config{
				Home:      home,
				ServerURL: serverURL,
				HTTP:      &http.Client{Timeout: 10 * time.Second},
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.keycalc)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "calcd base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVarP(&sessionID, "session", "s", "", "session name, or calcd session handle with --server")

	root.AddCommand(evalCmd(), pressCmd(), showCmd(), resetCmd(), replCmd())
	return root
}

// resolveSession picks the session a command works on. In remote mode
// without --session a new server session is opened when open is set.
func resolveSession(cmd *cobra.Command, open bool) (domain.SessionID, error) {
	if sessionID != "" {
		return domain.SessionID(sessionID), nil
	}
	if !wire.IsRemote() {
		return defaultSession, nil
	}
	if !open {
		return "", fmt.Errorf("session handle required with --server (use --session)")
	}
	id, _, err := wire.Opener.OpenSession(cmd.Context())
	if err != nil {
		return "", err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "session: %s\n", id)
	return id, nil
}

func formatDisplay(d domain.DisplayState) string {
	return fmt.Sprintf("%s  [%s]", d.Text, d.ShowClear)
}
