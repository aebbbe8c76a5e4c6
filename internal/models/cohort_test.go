package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullFloat64UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		want  float64
	}{
		{`12.5`, true, 12.5},
		{`"7"`, true, 7},
		{`""`, false, 0},
		{`"n/a"`, false, 0},
		{`null`, false, 0},
		{`true`, true, 1},
		{`false`, false, 0},
		{`"Infinity"`, false, 0},
		{`"-inf"`, false, 0},
		{`"NaN"`, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var nf NullFloat64
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &nf))
			assert.Equal(t, tt.valid, nf.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, nf.Float64)
			} else {
				assert.True(t, math.IsNaN(nf.Float()))
			}
		})
	}
}

func TestNullFloat64MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A NullFloat64 `json:"a"`
		B NullFloat64 `json:"b"`
	}{A: ParseNullFloat64("3.5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3.5,"b":null}`, string(data))
}

func TestPatientCardUnmarshalCaseID(t *testing.T) {
	var cards []PatientCard
	raw := `[
		{"caseid": 4481, "department": "General surgery", "opname": "Low anterior resection", "optype": "Colorectal", "age": "63", "asa": 2, "death_inhosp": 0},
		{"caseid": "17", "sex": "F", "bmi": 22.4}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &cards))
	require.Len(t, cards, 2)

	assert.Equal(t, "4481", cards[0].CaseID)
	assert.Equal(t, "Colorectal", cards[0].OpType)
	assert.Equal(t, 63.0, cards[0].Age.Float64)
	assert.True(t, cards[0].DeathInHosp.Valid)

	assert.Equal(t, "17", cards[1].CaseID)
	assert.Equal(t, "F", cards[1].Sex)
	assert.InDelta(t, 22.4, cards[1].BMI.Float64, 1e-9)
	assert.False(t, cards[1].ASA.Valid)
}

func TestPatientCardNullCaseID(t *testing.T) {
	var cards []PatientCard
	raw := `[{"caseid": null, "sex": "M"}, {"sex": "F"}, {"caseid": "null"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &cards))
	require.Len(t, cards, 3)

	assert.Equal(t, "", cards[0].CaseID)
	assert.Equal(t, "M", cards[0].Sex)
	assert.Equal(t, "", cards[1].CaseID)
	assert.Equal(t, "null", cards[2].CaseID)
}

func TestParseNullFloat64RejectsInfinity(t *testing.T) {
	for _, s := range []string{"Infinity", "+Inf", "-inf", "1e999"} {
		assert.False(t, ParseNullFloat64(s).Valid, s)
	}
	assert.True(t, ParseNullFloat64(" 36.6 ").Valid)

	var nf NullFloat64
	require.NoError(t, nf.Scan(math.Inf(1)))
	assert.False(t, nf.Valid)
	require.NoError(t, nf.Scan(72.0))
	assert.Equal(t, 72.0, nf.Float64)
}

func TestNewPatientRecord(t *testing.T) {
	rec := NewPatientRecord(map[string]string{
		"caseid": "5", "sex": "M", "optype": "Stomach",
		"age": "70", "bmi": "", "preop_hb": "13.1",
	})

	assert.Equal(t, "5", rec.CaseID)
	assert.Equal(t, 70.0, rec.Number("age"))
	assert.True(t, math.IsNaN(rec.Number("bmi")))
	// поле вне известного списка разбирается из исходной строки
	assert.Equal(t, 13.1, rec.Number("preop_hb"))
	assert.True(t, math.IsNaN(rec.Number("missing")))
	assert.Equal(t, "", rec.RawValue("missing"))
}
