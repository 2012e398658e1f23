package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/harshilpatel/folio"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveContent string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	Long: `Run the portfolio web server until interrupted.

FOLIO_SESSION_SECRET is required. Set FOLIO_ADMIN_PASSWORD to enable the
visit dashboard at /admin/.

Example:
  folio serve
  folio serve --addr :8080 --content content.json`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $FOLIO_ADDR or :3000)")
	serveCmd.Flags().StringVar(&serveContent, "content", "", "JSON file overriding the career configurations")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	cfg, err := folio.LoadConfig()
	if err != nil {
		err = errors.Wrap(err, "failed to load configuration")
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveContent != "" {
		cfg.ContentPath = serveContent
	}
	if databasePath != "" {
		cfg.DatabasePath = databasePath
	}

	app := folio.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- app.Start()
	}()

	select {
	case err = <-errc:
		app.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = app.Shutdown(shutdownCtx)
	return err
}
