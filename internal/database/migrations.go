package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

// RunMigrations выполняет миграции базы данных
func RunMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations")

	err := db.AutoMigrate(
		&models.CaseSeriesRow{},
		&models.PatientCardRow{},
		&models.CohortRow{},
	)
	if err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}

	createIndexes(db)

	slog.Info("Migrations completed")
	return nil
}

// extraIndexes индексы, которые не описываются тегами gorm
var extraIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_case_series_case ON explorer_case_series(case_id, kind)",
	"CREATE INDEX IF NOT EXISTS idx_case_series_loaded_desc ON explorer_case_series(loaded_at DESC)",
	"CREATE INDEX IF NOT EXISTS idx_cohort_fields_gin ON explorer_cohort USING GIN (fields)",
}

// createIndexes создает дополнительные индексы, ошибки только логируются
func createIndexes(db *gorm.DB) {
	for _, indexSQL := range extraIndexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			slog.Warn("Failed to create index", "sql", indexSQL, "error", err)
			continue
		}
		slog.Debug("Index ensured", "sql", indexSQL)
	}
}
