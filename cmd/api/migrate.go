package main

import (
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/dental-clinic/internal/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}

			if err := dbpkg.Migrate(db, log); err != nil {
				return err
			}

			log.Info("migrations applied")
			return nil
		},
	}
}
