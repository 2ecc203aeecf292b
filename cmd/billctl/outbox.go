package main

import (
	"encoding/json"
	"fmt"

	"lounge-billing/internal/infra/db"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/infra/readstore"
	"lounge-billing/internal/pkg/config"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

func newOutboxCmd() *cobra.Command {
	var (
		topic string
		limit int32
	)

	cmd := &cobra.Command{
		Use:   "outbox",
		Short: "List queued invoice delivery jobs",
		Long:  `Read notification jobs for a topic from the database configured through DB_* variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var dbCfg config.DBConfig
			if err := envconfig.Process("", &dbCfg); err != nil {
				return fmt.Errorf("failed to process env config: %w", err)
			}

			pool, cleanup, err := db.Connect(dbCfg)
			if err != nil {
				return err
			}
			defer cleanup()

			store := readstore.NewNotificationReadStore(dbq.New(), pool)
			jobs, err := store.ListByTopic(cmd.Context(), topic, limit)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(jobs)
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "invoice_created", "job topic")
	cmd.Flags().Int32Var(&limit, "limit", 20, "maximum jobs to list")
	return cmd
}
