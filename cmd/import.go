package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhekacitra/InsideOR-Project/configs"
	"github.com/rhekacitra/InsideOR-Project/internal/database"
	"github.com/rhekacitra/InsideOR-Project/internal/services"
)

func newImportCommand(getConfig func() *configs.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "import",
		Short:   "Copy the static dataset files into postgres",
		Example: `insideor import --data-dir ./data`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()

			ds, err := services.NewFileSource(cfg.Data.Dir).Load(cmd.Context())
			if err != nil {
				return err
			}

			db, err := database.InitDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.RunMigrations(db); err != nil {
				return err
			}

			result, err := services.NewImporter(db).Import(cmd.Context(), ds)
			if err != nil {
				return fmt.Errorf("ошибка импорта: %w", err)
			}

			output, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		},
	}
}
