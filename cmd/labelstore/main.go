package main

import (
	"os"

	"github.com/spf13/cobra"

	convertcmd "github.com/furyphoenix/labelstore/internal/cmd/convert"
	cfgpkg "github.com/furyphoenix/labelstore/internal/config"
	logpkg "github.com/furyphoenix/labelstore/pkg/log"
)

func main() {
	// Respect LABELSTORE_LOG_LEVEL for startup output; --log-level can
	// still override per invocation.
	level := os.Getenv("LABELSTORE_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs (used by Pebble) to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "labelstore LISTFILE DB_PATH",
		Short: "Bulk-load a labeled file list into an embedded key-value store",
		Long: "labelstore reads a text manifest of <path> <label> pairs and writes one\n" +
			"sequential key/value record per entry into a pebble or bolt database,\n" +
			"committing in fixed-size batches.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point; runtime failures should
			// not re-print usage.
			cmd.SilenceUsage = true

			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return err
			}
			cfgpkg.FromEnv(&cfg)

			if cmd.Flags().Changed("backend") {
				cfg.Backend, _ = cmd.Flags().GetString("backend")
			}
			if cmd.Flags().Changed("shuffle") {
				cfg.Shuffle, _ = cmd.Flags().GetBool("shuffle")
			}
			if cmd.Flags().Changed("gray") {
				cfg.Gray, _ = cmd.Flags().GetBool("gray")
			}
			if cmd.Flags().Changed("resize_width") {
				cfg.ResizeWidth, _ = cmd.Flags().GetInt("resize_width")
			}
			if cmd.Flags().Changed("resize_height") {
				cfg.ResizeHeight, _ = cmd.Flags().GetInt("resize_height")
			}
			if cmd.Flags().Changed("batch-size") {
				cfg.BatchSize, _ = cmd.Flags().GetInt("batch-size")
			}

			// Rebuild the process logger from --log-level/--log-format so
			// the run honors both; the startup logger only covered flag
			// parsing.
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")
			runLogger, err := logpkg.ApplyConfig(&logpkg.Config{Level: logLevel, Format: logFormat})
			if err != nil {
				return err
			}
			logpkg.RedirectStdLog(runLogger)

			if err := convertcmd.Run(convertcmd.Options{
				ListFile: args[0],
				DBPath:   args[1],
				Config:   cfg,
				Logger:   runLogger,
			}); err != nil {
				runLogger.Fatal("conversion failed", logpkg.Err(err))
			}
			return nil
		},
	}

	rootCmd.Flags().String("backend", cfgpkg.Default().Backend, "Storage backend: pebble|bolt")
	rootCmd.Flags().Bool("shuffle", false, "Randomly shuffle the order of entries before writing")
	rootCmd.Flags().Bool("gray", false, "Treat images as grayscale (recorded for downstream tooling)")
	rootCmd.Flags().Int("resize_width", 0, "Width images are resized to (recorded for downstream tooling)")
	rootCmd.Flags().Int("resize_height", 0, "Height images are resized to (recorded for downstream tooling)")
	rootCmd.Flags().Int("batch-size", cfgpkg.Default().BatchSize, "Records staged per commit")
	rootCmd.Flags().String("config", "", "Optional JSON config file")
	rootCmd.Flags().String("log-level", os.Getenv("LABELSTORE_LOG_LEVEL"), "Log level: debug|info|warn|error")
	rootCmd.Flags().String("log-format", os.Getenv("LABELSTORE_LOG_FORMAT"), "Log format: text|json (default text)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
