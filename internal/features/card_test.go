package features

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

func nf(v float64) models.NullFloat64 {
	return models.NullFloat64{NullFloat64: sql.NullFloat64{Float64: v, Valid: true}}
}

func TestBuildDischargeSummary(t *testing.T) {
	card := models.PatientCard{
		CaseID:      "12",
		Admission:   nf(-2 * 86400),
		Discharge:   nf(5.25 * 86400),
		LOSPostop:   nf(6),
		ICUDays:     nf(1),
		DeathInHosp: nf(0),
	}

	s := BuildDischargeSummary(card)
	assert.Equal(t, "12", s.CaseID)
	require.NotNil(t, s.AdmissionDays)
	assert.Equal(t, -2.0, *s.AdmissionDays)
	require.NotNil(t, s.DischargeDays)
	assert.Equal(t, 5.3, *s.DischargeDays)
	require.NotNil(t, s.PostopStay)
	assert.Equal(t, 6.0, *s.PostopStay)
	assert.False(t, s.Deceased)
	assert.Equal(t, "Patient discharged in stable condition.", s.Outcome)
}

func TestBuildDischargeSummaryDeceasedAndMissing(t *testing.T) {
	s := BuildDischargeSummary(models.PatientCard{CaseID: "3", DeathInHosp: nf(1)})

	assert.True(t, s.Deceased)
	assert.Equal(t, "Patient did not survive the hospital stay.", s.Outcome)
	assert.Nil(t, s.AdmissionDays)
	assert.Nil(t, s.DischargeDays)
	assert.Nil(t, s.ICUStay)
}
