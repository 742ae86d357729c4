package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
	"github.com/djoufack/cashpilot/internal/core/services"
	"github.com/djoufack/cashpilot/internal/platform/config"
	"github.com/djoufack/cashpilot/internal/repositories"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	userID  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Build statements, VAT declarations and reconciliations from the command line",
		Long:          "ledgerctl reads the same configuration as the server (PGSQL_URL, STORE_DRIVER, SQLITE_PATH, ...) and prints JSON results to stdout.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.userID, "user", "", "User whose ledger is processed (required)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log engine activity to stderr")
	_ = root.MarkPersistentFlagRequired("user")

	root.AddCommand(
		newStatementsCmd(opts),
		newDeclareCmd(opts),
		newReconcileCmd(opts),
	)
	return root
}

// withServices loads configuration, opens the store and hands the service
// container to fn. The store is closed when fn returns.
func withServices(ctx context.Context, opts *rootOptions, fn func(*config.Config, *portssvc.ServiceContainer) error) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, closeStore, err := repositories.Open(ctx, cfg, logger, false)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(cfg, services.NewServiceContainer(cfg, repos))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
