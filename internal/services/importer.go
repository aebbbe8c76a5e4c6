package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

const importBatchSize = 200

// ImportResult итог импорта набора данных в postgres
type ImportResult struct {
	BatchID    uuid.UUID `json:"batch_id"`
	Series     int       `json:"series"`
	Cards      int       `json:"cards"`
	CohortRows int       `json:"cohort_rows"`
}

// Importer переносит статический набор данных в postgres
type Importer struct {
	db  *gorm.DB
	now func() time.Time
}

// NewImporter создает импортер поверх gorm
func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Import записывает все ряды, карточки и когорту одной транзакцией.
// Повторный импорт перезаписывает строки с теми же ключами.
func (im *Importer) Import(ctx context.Context, ds *Dataset) (*ImportResult, error) {
	result := &ImportResult{BatchID: uuid.New()}
	loadedAt := im.now()

	seriesRows := make([]models.CaseSeriesRow, 0)
	for _, c := range ds.Cases {
		seriesRows = appendSeriesRows(seriesRows, result.BatchID, loadedAt, c.CaseID, models.SeriesKindVital, c.Vitals)
		seriesRows = appendSeriesRows(seriesRows, result.BatchID, loadedAt, c.CaseID, models.SeriesKindIntervention, c.Interventions)
	}

	cardRows := make([]models.PatientCardRow, 0, len(ds.Cards))
	for id, card := range ds.Cards {
		cardRows = append(cardRows, models.PatientCardRow{CaseID: id, BatchID: result.BatchID, Card: card})
	}

	cohortRows := make([]models.CohortRow, 0, len(ds.Cohort))
	for _, rec := range ds.Cohort {
		if rec.CaseID == "" {
			continue
		}
		cohortRows = append(cohortRows, models.CohortRow{CaseID: rec.CaseID, BatchID: result.BatchID, Fields: rec.Raw})
	}

	err := im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(seriesRows) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "case_id"}, {Name: "kind"}, {Name: "param"}},
				DoUpdates: clause.AssignmentColumns([]string{"batch_id", "points", "loaded_at"}),
			}).CreateInBatches(&seriesRows, importBatchSize).Error
			if err != nil {
				return fmt.Errorf("ошибка записи рядов: %w", err)
			}
		}
		if len(cardRows) > 0 {
			err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				CreateInBatches(&cardRows, importBatchSize).Error
			if err != nil {
				return fmt.Errorf("ошибка записи карточек: %w", err)
			}
		}
		if len(cohortRows) > 0 {
			err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				CreateInBatches(&cohortRows, importBatchSize).Error
			if err != nil {
				return fmt.Errorf("ошибка записи когорты: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Series = len(seriesRows)
	result.Cards = len(cardRows)
	result.CohortRows = len(cohortRows)

	slog.Info("Dataset imported",
		"batch_id", result.BatchID.String(),
		"series", result.Series,
		"cards", result.Cards,
		"cohort_rows", result.CohortRows,
	)
	return result, nil
}

func appendSeriesRows(rows []models.CaseSeriesRow, batchID uuid.UUID, loadedAt time.Time,
	caseID, kind string, series map[string]models.NamedSeries) []models.CaseSeriesRow {
	for param, s := range series {
		rows = append(rows, models.CaseSeriesRow{
			BatchID:  batchID,
			CaseID:   caseID,
			Kind:     kind,
			Param:    param,
			Points:   models.NewSeriesData(s.Values),
			LoadedAt: loadedAt,
		})
	}
	return rows
}
