// Command fritterctl is the admin CLI: schema migrations, credit record
// backfill and inspection of scheduled freets that are due.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/fritter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fritter-backend/internal/app"
	"github.com/heartmarshall/fritter-backend/internal/config"
	"github.com/heartmarshall/fritter-backend/internal/lock"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// cliEnv holds state shared by subcommands. Config is loaded lazily so that
// commands like version work without one.
type cliEnv struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	env := &cliEnv{}

	root := &cobra.Command{
		Use:           "fritterctl",
		Short:         "Administer a Fritter backend deployment",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&env.configPath, "config", os.Getenv("CONFIG_PATH"),
		"path to config.yaml (defaults to $CONFIG_PATH, then ./config.yaml)")

	root.AddCommand(
		newVersionCmd(),
		newMigrateCmd(env),
		newCreditsCmd(env),
		newScheduledCmd(env),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}

// load reads configuration and builds a logger writing to the command's
// error stream.
func (e *cliEnv) load(cmd *cobra.Command) error {
	if e.cfg != nil {
		return nil
	}
	cfg, err := config.LoadFrom(e.configPath)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = app.NewLogger(cfg.Log, cmd.ErrOrStderr())
	return nil
}

// services connects to the database and wires the application services.
// The caller closes the returned pool.
func (e *cliEnv) services(cmd *cobra.Command) (*app.Services, *pgxpool.Pool, error) {
	if err := e.load(cmd); err != nil {
		return nil, nil, err
	}
	pool, err := postgres.NewPool(cmd.Context(), e.cfg.Database, e.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return app.NewServices(e.cfg, e.logger, pool, lock.NewLocal()), pool, nil
}
