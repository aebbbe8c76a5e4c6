package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Виды рядов в хранилище
const (
	SeriesKindVital        = "vital"
	SeriesKindIntervention = "intervention"
)

// CaseSeriesRow один ряд одного случая в postgres
type CaseSeriesRow struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	BatchID  uuid.UUID  `json:"batch_id" gorm:"type:uuid;not null;index"`
	CaseID   string     `json:"caseid" gorm:"type:varchar(64);not null;index:idx_case_series_key,unique"`
	Kind     string     `json:"kind" gorm:"type:varchar(16);not null;index:idx_case_series_key,unique"`
	Param    string     `json:"param" gorm:"type:varchar(128);not null;index:idx_case_series_key,unique"`
	Points   SeriesData `json:"points" gorm:"serializer:json;type:jsonb"`
	LoadedAt time.Time  `json:"loaded_at" gorm:"not null"`
}

// SeriesData JSONB содержимое ряда
type SeriesData struct {
	Points   []TimePoint `json:"points"`
	LastTime float64     `json:"last_time"`
	Count    int         `json:"count"`
}

// NewSeriesData упаковывает точки ряда для хранения
func NewSeriesData(points []TimePoint) SeriesData {
	data := SeriesData{Points: points, Count: len(points)}
	if len(points) > 0 {
		data.LastTime = points[len(points)-1].Time
	}
	return data
}

func (CaseSeriesRow) TableName() string {
	return "explorer_case_series"
}

// BeforeCreate устанавливает ID перед созданием
func (r *CaseSeriesRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// PatientCardRow карточка пациента в postgres
type PatientCardRow struct {
	CaseID  string      `gorm:"type:varchar(64);primaryKey"`
	BatchID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Card    PatientCard `gorm:"serializer:json;type:jsonb"`
}

func (PatientCardRow) TableName() string {
	return "explorer_patient_cards"
}

// CohortRow строка когортной таблицы в postgres
type CohortRow struct {
	CaseID  string            `gorm:"type:varchar(64);primaryKey"`
	BatchID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Fields  map[string]string `gorm:"serializer:json;type:jsonb"`
}

func (CohortRow) TableName() string {
	return "explorer_cohort"
}
