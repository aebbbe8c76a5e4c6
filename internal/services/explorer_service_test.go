package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

type stubSource struct {
	ds    *Dataset
	err   error
	calls int
}

func (s *stubSource) Load(ctx context.Context) (*Dataset, error) {
	s.calls++
	return s.ds, s.err
}

func (s *stubSource) Name() string { return "stub" }

func ramp(n int, f func(i int) float64) []models.TimePoint {
	points := make([]models.TimePoint, n)
	for i := range points {
		points[i] = models.TimePoint{Time: float64(i * 10), Value: f(i)}
	}
	return points
}

func explorerFixture() *Dataset {
	return &Dataset{
		Cases: []models.CaseRecord{
			{
				CaseID: "1",
				Vitals: map[string]models.NamedSeries{
					"HR":  {Param: "HR", Values: ramp(100, func(i int) float64 { return 60 + float64(i) })},
					"SBP": {Param: "SBP", Values: ramp(100, func(i int) float64 { return 140 - float64(i) })},
				},
				Interventions: map[string]models.NamedSeries{
					"PPF": {Param: "PPF", Values: []models.TimePoint{{Time: 0, Value: 20}, {Time: 500, Value: 30}}},
				},
			},
			{
				CaseID: "2",
				Vitals: map[string]models.NamedSeries{
					"HR": {Param: "HR", Values: ramp(10, func(i int) float64 { return 70 })},
				},
				Interventions: map[string]models.NamedSeries{},
			},
		},
		Cards: map[string]models.PatientCard{
			"1": {CaseID: "1", OpType: "Colorectal"},
		},
		Cohort: []models.PatientRecord{
			models.NewPatientRecord(map[string]string{"caseid": "1", "sex": "M", "age": "50", "surgery_time": "100"}),
			models.NewPatientRecord(map[string]string{"caseid": "2", "sex": "F", "age": "60", "surgery_time": "200"}),
		},
	}
}

func loadedExplorer(t *testing.T) *ExplorerService {
	t.Helper()
	es := NewExplorerService(&stubSource{ds: explorerFixture()})
	require.NoError(t, es.Reload(context.Background()))
	return es
}

func TestExplorerNotLoaded(t *testing.T) {
	es := NewExplorerService(&stubSource{})

	assert.False(t, es.Loaded())
	_, err := es.CaseIDs()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = es.Matrix()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = es.Frame("1", 0)
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = es.Cohort(models.CohortRequest{X: "age", Y: "surgery_time"})
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestExplorerReloadError(t *testing.T) {
	src := &stubSource{err: errors.New("disk gone")}
	es := NewExplorerService(src)

	err := es.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stub")
	assert.False(t, es.Loaded())
	assert.Equal(t, 1, src.calls)
}

func TestExplorerCasesAndFrames(t *testing.T) {
	es := loadedExplorer(t)

	ids, err := es.CaseIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)

	frame, err := es.Frame("1", 100)
	require.NoError(t, err)
	assert.Equal(t, models.Window{Start: 100, End: 700}, frame.Window)
	assert.Len(t, frame.Vitals["HR"], 61)

	// окно прижимается к концу случая
	frame, err = es.Frame("1", 5000)
	require.NoError(t, err)
	assert.Equal(t, 390.0, frame.Window.Start)

	_, err = es.Frame("404", 0)
	assert.ErrorIs(t, err, ErrCaseNotFound)

	stats, err := es.WindowStats("2", 0)
	require.NoError(t, err)
	require.Len(t, stats.Vitals, 1)
	assert.Equal(t, 10, stats.Vitals[0].Count)

	loadedAt, err := es.LoadedAt()
	require.NoError(t, err)
	assert.False(t, loadedAt.IsZero())
}

func TestExplorerCards(t *testing.T) {
	es := loadedExplorer(t)

	card, err := es.Card("1")
	require.NoError(t, err)
	assert.Equal(t, "Colorectal", card.OpType)

	_, err = es.Card("2")
	assert.ErrorIs(t, err, ErrCaseNotFound)

	summary, err := es.Discharge("1")
	require.NoError(t, err)
	assert.Nil(t, summary.DischargeDays)
}

func TestExplorerScatter(t *testing.T) {
	es := loadedExplorer(t)

	resp, err := es.Scatter("1", "HR", "SBP")
	require.NoError(t, err)
	assert.Len(t, resp.Points, 100)
	require.NotNil(t, resp.Pearson)
	assert.InDelta(t, -1.0, *resp.Pearson, 1e-9)

	// у второго случая нет SBP, но параметр известен по набору
	resp, err = es.Scatter("2", "HR", "SBP")
	require.NoError(t, err)
	assert.Empty(t, resp.Points)
	assert.Nil(t, resp.Pearson)

	_, err = es.Scatter("1", "HR", "NOPE")
	assert.ErrorIs(t, err, ErrUnknownParam)
	_, err = es.Scatter("404", "HR", "SBP")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestExplorerXCorr(t *testing.T) {
	es := loadedExplorer(t)

	resp, err := es.XCorr("1", "HR", "SBP", 5)
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Pairs)
	assert.True(t, resp.Valid)
	assert.InDelta(t, 1.0, resp.MaxAbs, 0.1)

	_, err = es.XCorr("1", "NOPE", "HR", 5)
	assert.ErrorIs(t, err, ErrUnknownParam)
}

func TestExplorerMatrixAndParams(t *testing.T) {
	es := loadedExplorer(t)

	keys, err := es.ParamKeys()
	require.NoError(t, err)
	assert.Equal(t, []string{"HR", "PPF", "SBP"}, keys)

	m, err := es.Matrix()
	require.NoError(t, err)
	r, ok := m.Get("HR", "SBP")
	require.True(t, ok)
	assert.InDelta(t, -1.0, r, 1e-9)
	r, _ = m.Get("PPF", "PPF")
	assert.Equal(t, 1.0, r)
}

func TestExplorerCohort(t *testing.T) {
	es := loadedExplorer(t)

	resp, err := es.Cohort(models.CohortRequest{X: "age", Y: "surgery_time", OpType: "All"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "2 patients | Avg surgery time: 150.0", resp.Summary)
}

func TestExplorerSetDatasetReplacesSnapshot(t *testing.T) {
	es := loadedExplorer(t)

	next := explorerFixture()
	next.Cases = next.Cases[1:]
	es.SetDataset(next)

	ids, err := es.CaseIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids)
	_, err = es.Case("1")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}
