package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

func cohortFixture() []models.PatientRecord {
	rows := []map[string]string{
		{"caseid": "1", "sex": "M", "optype": "Colorectal", "age": "50", "surgery_time": "100", "icu_days": "2", "emop": "0"},
		{"caseid": "2", "sex": "F", "optype": "Stomach", "age": "60", "surgery_time": "200", "icu_days": "60", "emop": "1"},
		{"caseid": "3", "sex": "F", "optype": "Colorectal", "age": "", "surgery_time": "300", "icu_days": "1", "emop": "1"},
		{"caseid": "4", "sex": "M", "optype": "Stomach", "age": "abc", "surgery_time": "400", "icu_days": "", "emop": "1"},
	}
	records := make([]models.PatientRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.NewPatientRecord(r))
	}
	return records
}

func boolPtr(b bool) *bool { return &b }

func caseIDs(points []models.CohortPoint) []string {
	ids := make([]string, len(points))
	for i, p := range points {
		ids[i] = p.CaseID
	}
	return ids
}

func TestFilterCohortDefaults(t *testing.T) {
	resp := FilterCohort(cohortFixture(), models.CohortRequest{X: "age", Y: "surgery_time", OpType: "All"})

	assert.Equal(t, 3, resp.Count)
	require.NotNil(t, resp.MeanY)
	assert.InDelta(t, 233.333, *resp.MeanY, 1e-3)
	assert.Equal(t, "3 patients | Avg surgery time: 233.3", resp.Summary)
	// нечисловой X учитывается в сводке, но не рисуется
	assert.Equal(t, []string{"1", "2"}, caseIDs(resp.Points))
}

func TestFilterCohortICUOutliers(t *testing.T) {
	resp := FilterCohort(cohortFixture(), models.CohortRequest{X: "age", Y: "icu_days"})

	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "1 patients | Avg icu days: 2.0", resp.Summary)
	assert.Equal(t, []string{"1"}, caseIDs(resp.Points))
}

func TestFilterCohortFilters(t *testing.T) {
	tests := []struct {
		name string
		req  models.CohortRequest
		want []string
	}{
		{
			name: "emergency only",
			req:  models.CohortRequest{X: "age", Y: "surgery_time", EmergencyOnly: true},
			want: []string{"2"},
		},
		{
			name: "hide male",
			req:  models.CohortRequest{X: "age", Y: "surgery_time", ShowMale: boolPtr(false)},
			want: []string{"2"},
		},
		{
			name: "hide female",
			req:  models.CohortRequest{X: "age", Y: "surgery_time", ShowFemale: boolPtr(false)},
			want: []string{"1"},
		},
		{
			name: "operation type",
			req:  models.CohortRequest{X: "age", Y: "surgery_time", OpType: "Stomach"},
			want: []string{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := FilterCohort(cohortFixture(), tt.req)
			assert.Equal(t, tt.want, caseIDs(resp.Points))
		})
	}
}

func TestFilterCohortNoMatches(t *testing.T) {
	resp := FilterCohort(cohortFixture(), models.CohortRequest{
		X:             "age",
		Y:             "surgery_time",
		EmergencyOnly: true,
		ShowFemale:    boolPtr(false),
		OpType:        "Colorectal",
	})

	assert.Equal(t, 0, resp.Count)
	assert.Nil(t, resp.MeanY)
	assert.Equal(t, "No matching data.", resp.Summary)
	assert.NotNil(t, resp.Points)
	assert.Empty(t, resp.Points)
}
