package main

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/rhekacitra/InsideOR-Project/configs"
	"github.com/rhekacitra/InsideOR-Project/internal/database"
	"github.com/rhekacitra/InsideOR-Project/internal/services"
)

// openSource выбирает источник набора данных. Для postgres возвращается открытая БД.
func openSource(cfg *configs.Config) (services.DataSource, *gorm.DB, error) {
	if cfg.Data.Source != configs.SourcePostgres {
		return services.NewFileSource(cfg.Data.Dir), nil, nil
	}

	db, err := database.InitDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.RunMigrations(db); err != nil {
		closeDB(db)
		return nil, nil, err
	}
	return services.NewDBSource(db), db, nil
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if err := database.CloseDatabase(db); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}
