package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rhekacitra/InsideOR-Project/internal/features"
	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

var (
	// ErrCaseNotFound случай отсутствует в загруженном наборе
	ErrCaseNotFound = errors.New("case not found")
	// ErrUnknownParam параметр не встречается ни в одном случае
	ErrUnknownParam = errors.New("unknown parameter")
	// ErrNotLoaded набор данных еще не загружен
	ErrNotLoaded = errors.New("dataset is not loaded")
)

// DefaultMaxLag лаг по умолчанию для кросс-корреляции, в отсчетах
const DefaultMaxLag = 60

// snapshot неизменяемое состояние одной загрузки набора данных
type snapshot struct {
	dataset   *Dataset
	index     map[string]int
	builders  map[string]*features.FrameBuilder
	paramKeys []string
	paramSet  map[string]struct{}
	matrix    *models.CorrelationMatrix
	loadedAt  time.Time
}

// ExplorerService владеет загруженным набором данных и матрицей корреляций
type ExplorerService struct {
	source DataSource

	mu   sync.RWMutex
	snap *snapshot
}

// NewExplorerService создает сервис поверх источника данных
func NewExplorerService(source DataSource) *ExplorerService {
	return &ExplorerService{source: source}
}

// Reload полностью перечитывает набор данных и заново строит матрицу корреляций
func (es *ExplorerService) Reload(ctx context.Context) error {
	ds, err := es.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("ошибка загрузки набора данных из %s: %w", es.source.Name(), err)
	}
	es.SetDataset(ds)
	return nil
}

// SetDataset заменяет набор данных целиком
func (es *ExplorerService) SetDataset(ds *Dataset) {
	started := time.Now()

	snap := &snapshot{
		dataset:   ds,
		index:     make(map[string]int, len(ds.Cases)),
		builders:  make(map[string]*features.FrameBuilder, len(ds.Cases)),
		paramKeys: features.ParamKeys(ds.Cases),
		loadedAt:  time.Now().UTC(),
	}
	snap.paramSet = make(map[string]struct{}, len(snap.paramKeys))
	for _, k := range snap.paramKeys {
		snap.paramSet[k] = struct{}{}
	}
	for i, c := range ds.Cases {
		snap.index[c.CaseID] = i
		snap.builders[c.CaseID] = features.NewFrameBuilder(c)
	}
	snap.matrix = features.GlobalMatrix(snap.paramKeys, ds.Cases)

	es.mu.Lock()
	es.snap = snap
	es.mu.Unlock()

	slog.Info("Correlation matrix built",
		"cases", len(ds.Cases),
		"params", len(snap.paramKeys),
		"elapsed", time.Since(started).String(),
	)
}

func (es *ExplorerService) current() (*snapshot, error) {
	es.mu.RLock()
	defer es.mu.RUnlock()
	if es.snap == nil {
		return nil, ErrNotLoaded
	}
	return es.snap, nil
}

// Loaded сообщает, загружен ли набор данных
func (es *ExplorerService) Loaded() bool {
	_, err := es.current()
	return err == nil
}

// CaseIDs возвращает идентификаторы случаев в порядке выбора
func (es *ExplorerService) CaseIDs() ([]string, error) {
	snap, err := es.current()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(snap.dataset.Cases))
	for i, c := range snap.dataset.Cases {
		ids[i] = c.CaseID
	}
	return ids, nil
}

// Case возвращает записи случая
func (es *ExplorerService) Case(caseID string) (models.CaseRecord, error) {
	snap, err := es.current()
	if err != nil {
		return models.CaseRecord{}, err
	}
	i, ok := snap.index[caseID]
	if !ok {
		return models.CaseRecord{}, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
	}
	return snap.dataset.Cases[i], nil
}

// FrameBuilder возвращает построитель кадров случая
func (es *ExplorerService) FrameBuilder(caseID string) (*features.FrameBuilder, error) {
	snap, err := es.current()
	if err != nil {
		return nil, err
	}
	fb, ok := snap.builders[caseID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
	}
	return fb, nil
}

// Frame возвращает кадр просмотрщика для начала окна
func (es *ExplorerService) Frame(caseID string, start float64) (models.Frame, error) {
	fb, err := es.FrameBuilder(caseID)
	if err != nil {
		return models.Frame{}, err
	}
	return fb.Frame(start), nil
}

// WindowStats возвращает статистику рядов случая в окне
func (es *ExplorerService) WindowStats(caseID string, start float64) (models.WindowStatsResponse, error) {
	fb, err := es.FrameBuilder(caseID)
	if err != nil {
		return models.WindowStatsResponse{}, err
	}
	return fb.Stats(start), nil
}

// Card возвращает карточку пациента
func (es *ExplorerService) Card(caseID string) (models.PatientCard, error) {
	snap, err := es.current()
	if err != nil {
		return models.PatientCard{}, err
	}
	card, ok := snap.dataset.Cards[caseID]
	if !ok {
		return models.PatientCard{}, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
	}
	return card, nil
}

// Discharge возвращает выписной эпикриз случая
func (es *ExplorerService) Discharge(caseID string) (models.DischargeSummary, error) {
	card, err := es.Card(caseID)
	if err != nil {
		return models.DischargeSummary{}, err
	}
	return features.BuildDischargeSummary(card), nil
}

func (es *ExplorerService) pair(caseID, paramX, paramY string) (models.NamedSeries, models.NamedSeries, error) {
	snap, err := es.current()
	if err != nil {
		return models.NamedSeries{}, models.NamedSeries{}, err
	}
	i, ok := snap.index[caseID]
	if !ok {
		return models.NamedSeries{}, models.NamedSeries{}, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
	}
	for _, p := range []string{paramX, paramY} {
		if _, ok := snap.paramSet[p]; !ok {
			return models.NamedSeries{}, models.NamedSeries{}, fmt.Errorf("%w: %q", ErrUnknownParam, p)
		}
	}
	record := snap.dataset.Cases[i]
	return record.Series(paramX), record.Series(paramY), nil
}

// Scatter возвращает пары значений двух параметров случая и их корреляцию
func (es *ExplorerService) Scatter(caseID, paramX, paramY string) (models.ScatterResponse, error) {
	x, y, err := es.pair(caseID, paramX, paramY)
	if err != nil {
		return models.ScatterResponse{}, err
	}
	points := features.PairByTime(x, y)
	return models.ScatterResponse{
		CaseID:  caseID,
		ParamX:  paramX,
		ParamY:  paramY,
		Points:  points,
		Pearson: features.PearsonPairs(points),
	}, nil
}

// XCorr возвращает кросс-корреляцию пары параметров с поиском лага
func (es *ExplorerService) XCorr(caseID, paramX, paramY string, maxLag int) (models.XCorrResponse, error) {
	x, y, err := es.pair(caseID, paramX, paramY)
	if err != nil {
		return models.XCorrResponse{}, err
	}
	pairs := features.PairByTime(x, y)
	xc := features.CalculateXCorr(pairs, maxLag)
	return models.XCorrResponse{
		CaseID: caseID,
		ParamX: paramX,
		ParamY: paramY,
		Pairs:  len(pairs),
		MaxAbs: xc.MaxAbs,
		Lag:    xc.Lag,
		Valid:  xc.Valid,
	}, nil
}

// ParamKeys возвращает отсортированные ключи параметров
func (es *ExplorerService) ParamKeys() ([]string, error) {
	snap, err := es.current()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(snap.paramKeys))
	copy(keys, snap.paramKeys)
	return keys, nil
}

// Matrix возвращает матрицу корреляций текущей загрузки
func (es *ExplorerService) Matrix() (*models.CorrelationMatrix, error) {
	snap, err := es.current()
	if err != nil {
		return nil, err
	}
	return snap.matrix, nil
}

// Cohort фильтрует когортную таблицу
func (es *ExplorerService) Cohort(req models.CohortRequest) (models.CohortResponse, error) {
	snap, err := es.current()
	if err != nil {
		return models.CohortResponse{}, err
	}
	return features.FilterCohort(snap.dataset.Cohort, req), nil
}

// LoadedAt возвращает время последней загрузки
func (es *ExplorerService) LoadedAt() (time.Time, error) {
	snap, err := es.current()
	if err != nil {
		return time.Time{}, err
	}
	return snap.loadedAt, nil
}
