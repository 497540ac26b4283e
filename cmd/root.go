package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tracker "github.com/org-tools/employee-tracker"
	"github.com/org-tools/employee-tracker/cmd/base"
	"github.com/org-tools/employee-tracker/cmd/menu"
)

type openStoreFunc func(conf tracker.DatabaseConfig, logger *zap.Logger) (tracker.Store, error)

func openStore(conf tracker.DatabaseConfig, logger *zap.Logger) (tracker.Store, error) {
	db, err := tracker.Open(conf, logger)
	if err != nil {
		return nil, err
	}
	return db, nil
}

var rootCmd = &cobra.Command{
	Use:           "employee-tracker",
	Short:         "manage departments, roles and employees",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := tracker.LoadConfig()
		if err != nil {
			return err
		}
		logger, err := tracker.NewLogger(conf.Log)
		if err != nil {
			return err
		}
		defer logger.Sync()

		return runTracker(cmd.Context(), conf.Database, logger, openStore, base.NewTerminalPrompter(), cmd.OutOrStdout())
	},
}

// runTracker holds the store for the whole menu session and closes it on
// every way out. A close failure is returned when the menu itself succeeded.
func runTracker(ctx context.Context, conf tracker.DatabaseConfig, logger *zap.Logger, open openStoreFunc, prompter base.Prompter, out io.Writer) (err error) {
	store, err := open(conf, logger)
	if err != nil {
		logger.Error("open store", zap.Error(err))
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("close store", zap.Error(closeErr))
			if err == nil {
				err = closeErr
			}
		}
	}()

	err = menu.Run(ctx, &base.Session{
		Store:    store,
		Prompter: prompter,
		Out:      out,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("menu stopped", zap.Error(err))
	}
	return err
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
