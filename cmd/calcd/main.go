package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"keycalc/internal/crypto"
	"keycalc/internal/server"
	"keycalc/internal/services/session"
	"keycalc/internal/store"
)

// minIdleTTL is the shortest accepted --idle-ttl.
const minIdleTTL = time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr    string
		secret  string
		idleTTL time.Duration
	)
	cmd := &cobra.Command{
		Use:          "calcd",
		Short:        "Serve calculator sessions over HTTP and websockets",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = os.Getenv("CALCD_ADDR")
			}
			if addr == "" {
				addr = ":8080"
			}
			if secret == "" {
				secret = os.Getenv("CALCD_SECRET")
			}
			if idleTTL < 0 || (idleTTL > 0 && idleTTL < minIdleTTL) {
				return fmt.Errorf("--idle-ttl must be 0 (never prune) or at least %s", minIdleTTL)
			}
			return serve(cmd.Context(), addr, secret, idleTTL)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&secret, "secret", "", "handle signing secret (default random)")
	cmd.Flags().DurationVar(&idleTTL, "idle-ttl", time.Hour, "forget sessions idle for this long (0 never prunes)")
	return cmd
}

func serve(ctx context.Context, addr, secret string, idleTTL time.Duration) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	signer, err := newSigner(secret)
	if err != nil {
		return err
	}
	defer signer.Close()
	if secret == "" {
		logger.Warn("no --secret given; session handles will not survive a restart")
	}

	sessions := store.NewMemoryStore()
	srv := server.New(session.New(sessions), signer, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if idleTTL > 0 {
		go server.PruneIdle(ctx, sessions, idleTTL, idleTTL/4, logger)
	}

	hs := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("calcd listening", "addr", addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "sessions", sessions.Len())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newSigner(secret string) (*crypto.HandleSigner, error) {
	if secret == "" {
		return crypto.NewRandomHandleSigner()
	}
	key := crypto.DeriveHandleKey(secret)
	defer crypto.Wipe(key)
	return crypto.NewHandleSigner(key)
}
