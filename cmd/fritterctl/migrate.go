package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/fritter-backend/internal/adapter/postgres"
)

func newMigrateCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := env.load(cmd); err != nil {
					return err
				}
				applied, err := postgres.Migrate(cmd.Context(), env.cfg.Database.DSN)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
					return nil
				}
				for _, v := range applied {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %d\n", v)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := env.load(cmd); err != nil {
					return err
				}
				provider, db, err := postgres.OpenMigrator(cmd.Context(), env.cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer db.Close()

				res, err := provider.Down(cmd.Context())
				if err != nil {
					return fmt.Errorf("goose down: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d\n", res.Source.Version)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := env.load(cmd); err != nil {
					return err
				}
				provider, db, err := postgres.OpenMigrator(cmd.Context(), env.cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer db.Close()

				statuses, err := provider.Status(cmd.Context())
				if err != nil {
					return fmt.Errorf("goose status: %w", err)
				}
				return printMigrationStatus(cmd, statuses)
			},
		},
	)
	return cmd
}

func printMigrationStatus(cmd *cobra.Command, statuses []*goose.MigrationStatus) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, st := range statuses {
		applied := "-"
		if st.State == goose.StateApplied {
			applied = st.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", st.Source.Version, st.State, applied, st.Source.Path)
	}
	return tw.Flush()
}
