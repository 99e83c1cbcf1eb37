package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/visionkit"
	"github.com/eringen/visionkit/views"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "visionkit",
	Short: "Vision board site and builder",
	Long: `visionkit serves the vision board site: template and idea galleries,
the online board builder with PNG export, and the admin dashboard.

Configuration is read from an optional YAML file (--config) and
VISIONKIT_* environment variables, e.g. VISIONKIT_SESSION_SECRET.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, syncIdeasCmd, renderCmd, versionCmd)
}

// loadConfig reads the site configuration and builds its logger. An
// explicit --log-level wins over the configured level.
func loadConfig(cmd *cobra.Command) (visionkit.SiteConfig, *zap.Logger, error) {
	cfg, err := visionkit.LoadConfig(cfgFile)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	logger, err := visionkit.NewLogger(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func siteViews(cfg visionkit.SiteConfig) visionkit.ViewFuncs {
	return views.Funcs(views.SiteConfig{
		Name:        cfg.Name,
		URL:         cfg.URL,
		Description: cfg.Description,
		Author:      cfg.Author,
	})
}
