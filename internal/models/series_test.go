package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampStart(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		duration float64
		want     float64
	}{
		{"inside range", 100, 2000, 100},
		{"negative", -10, 2000, 0},
		{"past the end", 5000, 2000, 1400},
		{"short case", 50, 300, 0},
		{"nan", math.NaN(), 2000, 0},
		{"exact end", 1400, 2000, 1400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampStart(tt.start, tt.duration))
		})
	}
}

func TestNewWindowWidth(t *testing.T) {
	w := NewWindow(700, 3000)
	assert.Equal(t, Window{Start: 700, End: 700 + WindowSize}, w)
}

func TestCaseRecordSeriesLookup(t *testing.T) {
	vital := NamedSeries{Param: "HR", Values: []TimePoint{{0, 80}}}
	drug := NamedSeries{Param: "HR", Values: []TimePoint{{0, 1}, {1, 2}}}
	c := CaseRecord{
		CaseID:        "1",
		Vitals:        map[string]NamedSeries{"HR": vital, "EMPTY": {Param: "EMPTY"}},
		Interventions: map[string]NamedSeries{"HR": drug, "PPF": drug, "EMPTY": drug},
	}

	assert.Equal(t, vital, c.Series("HR"))
	assert.Equal(t, drug, c.Series("PPF"))
	// пустой витальный ряд все равно затеняет вмешательство
	assert.Equal(t, 0, c.Series("EMPTY").Len())

	missing := c.Series("NOPE")
	assert.Equal(t, "NOPE", missing.Param)
	assert.Empty(t, missing.Values)
}

func TestCaseRecordDuration(t *testing.T) {
	c := CaseRecord{
		Vitals: map[string]NamedSeries{
			"HR":  {Values: []TimePoint{{0, 1}, {3600, 1}, {1200, 1}}},
			"SBP": {Values: []TimePoint{{10, 1}, {2400, 1}}},
		},
		Interventions: map[string]NamedSeries{
			"PPF": {Values: []TimePoint{{9999, 1}}},
		},
	}
	assert.Equal(t, 3600.0, c.Duration())
	assert.Equal(t, 0.0, CaseRecord{}.Duration())
}

func TestCaseRecordParamKeys(t *testing.T) {
	c := CaseRecord{
		Vitals:        map[string]NamedSeries{"HR": {}, "SBP": {}},
		Interventions: map[string]NamedSeries{"HR": {}, "PPF": {}},
	}
	assert.ElementsMatch(t, []string{"HR", "SBP", "PPF"}, c.ParamKeys())
}

func TestCorrelationMatrixJSON(t *testing.T) {
	m := NewCorrelationMatrix([]string{"A", "B"})
	m.Set("A", "B", 0.25)
	m.Set("A", "A", 1)
	m.Set("B", "B", 1)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded struct {
		Keys   []string           `json:"keys"`
		Values [][]float64        `json:"values"`
		Pairs  map[string]float64 `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, []string{"A", "B"}, decoded.Keys)
	assert.Equal(t, [][]float64{{1, 0.25}, {0.25, 1}}, decoded.Values)
	assert.Equal(t, 0.25, decoded.Pairs["A||B"])
	assert.Equal(t, 0.25, decoded.Pairs["B||A"])
}

func TestCorrelationMatrixKeysAreCopied(t *testing.T) {
	keys := []string{"A", "B"}
	m := NewCorrelationMatrix(keys)
	keys[0] = "Z"

	got := m.Keys()
	assert.Equal(t, []string{"A", "B"}, got)
	got[1] = "Y"
	assert.Equal(t, []string{"A", "B"}, m.Keys())
}
