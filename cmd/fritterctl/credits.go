package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreditsCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Inspect and repair credit records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "backfill",
		Short: "Create a zero-score credit record for every user missing one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, pool, err := env.services(cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := svcs.Credits.Backfill(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d credit record(s)\n", n)
			return nil
		},
	})
	return cmd
}
