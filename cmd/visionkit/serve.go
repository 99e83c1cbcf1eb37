package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/visionkit"
)

const shutdownTimeout = 30 * time.Second

var serveWatchIdeas bool

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the web server",
	RunE:    runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveWatchIdeas, "watch-ideas", false, "sync the ideas inbox whenever it changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	app := visionkit.New(cfg, siteViews(cfg), visionkit.WithLogger(logger))
	defer app.Close()
	if err := app.Setup(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatchIdeas {
		go func() {
			if err := app.IdeaSyncer().Watch(ctx, time.Second); err != nil {
				logger.Error("ideas watcher stopped", zap.Error(err))
			}
		}()
	}

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errc
}
