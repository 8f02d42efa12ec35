package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

func newScheduledCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduled",
		Short: "Inspect scheduled freets",
	}

	var asJSON bool
	due := &cobra.Command{
		Use:   "due",
		Short: "List scheduled freets whose publish date has been reached",
		Long: `Lists scheduled freets with publish_date <= now. Nothing is published;
an external publisher can consume the output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, pool, err := env.services(cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			items, err := svcs.Scheduled.ListDue(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeDueJSON(cmd, items)
			}
			return writeDueTable(cmd, items)
		},
	}
	due.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per line")

	cmd.AddCommand(due)
	return cmd
}

type dueItem struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Content     string    `json:"content"`
	PublishDate time.Time `json:"publishDate"`
}

func writeDueJSON(cmd *cobra.Command, items []domain.ScheduledItem) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, it := range items {
		if err := enc.Encode(dueItem{
			ID:          it.ID.String(),
			Owner:       it.Owner.String(),
			Content:     it.Content,
			PublishDate: it.PublishAt,
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeDueTable(cmd *cobra.Command, items []domain.ScheduledItem) error {
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no scheduled freets are due")
		return nil
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tOWNER\tPUBLISH DATE\tCONTENT")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%q\n", it.ID, it.Owner, it.PublishAt.UTC().Format(time.RFC3339), it.Content)
	}
	return tw.Flush()
}
