package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/visionkit"
)

var syncWatch bool

var syncIdeasCmd = &cobra.Command{
	Use:   "sync-ideas",
	Short: "Copy images from the ideas inbox into the public gallery",
	Long: `sync-ideas copies every image in the configured inbox into
<static_dir>/ideas, deriving a title, category and tags from the file
name, and records the ideas in the database. Files that are already up
to date are skipped.`,
	RunE: runSyncIdeas,
}

func init() {
	syncIdeasCmd.Flags().BoolVarP(&syncWatch, "watch", "w", false, "keep running and sync on every inbox change")
}

func runSyncIdeas(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := visionkit.NewStore(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	app := visionkit.New(cfg, visionkit.ViewFuncs{}, visionkit.WithStore(store), visionkit.WithLogger(logger))
	syncer := app.IdeaSyncer()

	if syncWatch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return syncer.Watch(ctx, time.Second)
	}

	report, err := syncer.Sync(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Synced %d new, %d unchanged, %d failed.\n", report.Copied, report.Skipped, report.Failed)
	if report.Failed > 0 {
		return fmt.Errorf("%d files failed to sync", report.Failed)
	}
	return nil
}
