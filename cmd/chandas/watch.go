package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chandas/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd re-analyzes a verse file whenever it changes
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-analyze a verse file on every change",
	Long: `Watches the given file and re-runs the analysis after each save.
Stops on Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		path := args[0]

		analyze := func(p string) {
			data, err := os.ReadFile(p)
			if err != nil {
				logger.Warn("failed to re-read watched file", zap.String("path", p), zap.Error(err))
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "-- %s\n", p)
			printReports(cmd, "", analyzeText(reg, string(data)))
		}

		// Initial pass before waiting for changes.
		analyze(path)

		w, err := watch.New(path, analyze)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		logger.Info("watching", zap.String("path", path))

		<-ctx.Done()
		w.Stop()
		return nil
	},
}
