package features

import (
	"math"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

const secondsPerDay = 60 * 60 * 24

// BuildDischargeSummary собирает эпикриз из карточки пациента
func BuildDischargeSummary(card models.PatientCard) models.DischargeSummary {
	summary := models.DischargeSummary{
		CaseID:        card.CaseID,
		AdmissionDays: days(card.Admission),
		DischargeDays: days(card.Discharge),
		PostopStay:    optional(card.LOSPostop),
		ICUStay:       optional(card.ICUDays),
		Deceased:      card.DeathInHosp.Valid && card.DeathInHosp.Float64 != 0,
	}
	if summary.Deceased {
		summary.Outcome = "Patient did not survive the hospital stay."
	} else {
		summary.Outcome = "Patient discharged in stable condition."
	}
	return summary
}

func days(sec models.NullFloat64) *float64 {
	if !sec.Valid {
		return nil
	}
	d := math.Round(sec.Float64/secondsPerDay*10) / 10
	return &d
}

func optional(v models.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
