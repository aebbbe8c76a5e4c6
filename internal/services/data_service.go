package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
	"github.com/rhekacitra/InsideOR-Project/pkg/utils"
	"gorm.io/gorm"
)

// Имена файлов статического набора данных
const (
	VitalsFile  = "vital_data.json"
	ProxyFile   = "proxy_drug_data.json"
	PatientFile = "patient.json"
	CohortFile  = "data.csv"
)

// Dataset полностью загруженный набор данных
type Dataset struct {
	Cases  []models.CaseRecord
	Cards  map[string]models.PatientCard
	Cohort []models.PatientRecord
}

// DataSource источник набора данных
type DataSource interface {
	Load(ctx context.Context) (*Dataset, error)
	Name() string
}

// RawPoint точка в исходном JSON, время и значение могут прийти строками
type RawPoint struct {
	Time  models.NullFloat64 `json:"time"`
	Value models.NullFloat64 `json:"value"`
}

// RawSeriesDoc документ рядов: caseid -> param -> точки
type RawSeriesDoc map[string]map[string][]RawPoint

// FileSource читает статические файлы дашборда из каталога
type FileSource struct {
	dir string
}

// NewFileSource создает источник данных из каталога
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (fs *FileSource) Name() string {
	return "files:" + fs.dir
}

// Load читает ряды, карточки и когортную таблицу
func (fs *FileSource) Load(ctx context.Context) (*Dataset, error) {
	var vitals, proxy RawSeriesDoc
	if err := readJSON(filepath.Join(fs.dir, VitalsFile), &vitals); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(fs.dir, ProxyFile), &proxy); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cards []models.PatientCard
	if err := readJSON(filepath.Join(fs.dir, PatientFile), &cards); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		slog.Warn("Patient cards file is missing", "file", PatientFile)
	}

	cohort, err := readCohortFile(filepath.Join(fs.dir, CohortFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		slog.Warn("Cohort file is missing", "file", CohortFile)
	}

	ds := &Dataset{
		Cases:  BuildCases(vitals, proxy),
		Cards:  make(map[string]models.PatientCard, len(cards)),
		Cohort: cohort,
	}
	for _, card := range cards {
		ds.Cards[card.CaseID] = card
	}

	slog.Info("Dataset loaded from files",
		"dir", fs.dir,
		"cases", len(ds.Cases),
		"cards", len(ds.Cards),
		"cohort_rows", len(ds.Cohort),
	)
	return ds, nil
}

// BuildCases собирает случаи из двух параллельных документов.
// Список случаев задается документом витальных показателей.
func BuildCases(vitals, proxy RawSeriesDoc) []models.CaseRecord {
	ids := make([]string, 0, len(vitals))
	for id := range vitals {
		ids = append(ids, id)
	}
	SortCaseIDs(ids)

	cases := make([]models.CaseRecord, 0, len(ids))
	for _, id := range ids {
		cases = append(cases, models.CaseRecord{
			CaseID:        id,
			Vitals:        toSeriesMap(vitals[id]),
			Interventions: toSeriesMap(proxy[id]),
		})
	}
	return cases
}

// toSeriesMap приводит точки к числам, точки с нечисловым временем или значением пропускаются
func toSeriesMap(raw map[string][]RawPoint) map[string]models.NamedSeries {
	out := make(map[string]models.NamedSeries, len(raw))
	for param, points := range raw {
		values := make([]models.TimePoint, 0, len(points))
		for _, p := range points {
			if !p.Time.Valid || !p.Value.Valid {
				continue
			}
			values = append(values, models.TimePoint{Time: p.Time.Float64, Value: p.Value.Float64})
		}
		out[param] = models.NamedSeries{Param: param, Values: values}
	}
	return out
}

// SortCaseIDs сортирует идентификаторы случаев численно, нечисловые идут после по строке
func SortCaseIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, errA := strconv.ParseFloat(ids[i], 64)
		b, errB := strconv.ParseFloat(ids[j], 64)
		switch {
		case errA == nil && errB == nil:
			if a != b {
				return a < b
			}
			return ids[i] < ids[j]
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}

func readJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}
	return nil
}

// readCohortFile читает когортную таблицу, строки с нечисловым surgery_time отбрасываются
func readCohortFile(path string) ([]models.PatientRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла %s: %w", path, err)
	}
	defer f.Close()
	return ReadCohort(f)
}

// ReadCohort разбирает CSV когортной таблицы с заголовком
func ReadCohort(r io.Reader) ([]models.PatientRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []models.PatientRecord{}, nil
		}
		return nil, fmt.Errorf("ошибка чтения заголовка CSV: %w", err)
	}

	records := make([]models.PatientRecord, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения CSV: %w", err)
		}

		raw := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				raw[name] = row[i]
			}
		}
		records = append(records, models.NewPatientRecord(raw))
	}
	return FilterCohortRows(records), nil
}

// FilterCohortRows оставляет строки с числовым surgery_time
func FilterCohortRows(records []models.PatientRecord) []models.PatientRecord {
	out := records[:0]
	for _, rec := range records {
		if utils.IsNumber(rec.Number("surgery_time")) {
			out = append(out, rec)
		}
	}
	return out
}

// DBSource читает набор данных, ранее импортированный в postgres
type DBSource struct {
	db *gorm.DB
}

// NewDBSource создает источник данных поверх gorm
func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{db: db}
}

func (ds *DBSource) Name() string {
	return "postgres"
}

// Load читает все ряды, карточки и когорту
func (ds *DBSource) Load(ctx context.Context) (*Dataset, error) {
	db := ds.db.WithContext(ctx)

	var rows []models.CaseSeriesRow
	if err := db.Order("case_id ASC").Order("kind ASC").Order("param ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("ошибка получения рядов: %w", err)
	}

	var cardRows []models.PatientCardRow
	if err := db.Find(&cardRows).Error; err != nil {
		return nil, fmt.Errorf("ошибка получения карточек: %w", err)
	}

	var cohortRows []models.CohortRow
	if err := db.Find(&cohortRows).Error; err != nil {
		return nil, fmt.Errorf("ошибка получения когорты: %w", err)
	}

	byCase := make(map[string]*models.CaseRecord)
	ids := make([]string, 0)
	for _, row := range rows {
		rec, ok := byCase[row.CaseID]
		if !ok {
			rec = &models.CaseRecord{
				CaseID:        row.CaseID,
				Vitals:        make(map[string]models.NamedSeries),
				Interventions: make(map[string]models.NamedSeries),
			}
			byCase[row.CaseID] = rec
			ids = append(ids, row.CaseID)
		}
		series := models.NamedSeries{Param: row.Param, Values: row.Points.Points}
		switch row.Kind {
		case models.SeriesKindVital:
			rec.Vitals[row.Param] = series
		case models.SeriesKindIntervention:
			rec.Interventions[row.Param] = series
		default:
			slog.Warn("Unknown series kind", "kind", row.Kind, "case_id", row.CaseID, "param", row.Param)
		}
	}
	SortCaseIDs(ids)

	dataset := &Dataset{
		Cases:  make([]models.CaseRecord, 0, len(ids)),
		Cards:  make(map[string]models.PatientCard, len(cardRows)),
		Cohort: make([]models.PatientRecord, 0, len(cohortRows)),
	}
	for _, id := range ids {
		dataset.Cases = append(dataset.Cases, *byCase[id])
	}
	for _, row := range cardRows {
		card := row.Card
		card.CaseID = row.CaseID
		dataset.Cards[row.CaseID] = card
	}
	for _, row := range cohortRows {
		dataset.Cohort = append(dataset.Cohort, models.NewPatientRecord(row.Fields))
	}
	dataset.Cohort = FilterCohortRows(dataset.Cohort)

	slog.Info("Dataset loaded from postgres",
		"cases", len(dataset.Cases),
		"series", len(rows),
		"cards", len(dataset.Cards),
		"cohort_rows", len(dataset.Cohort),
	)
	return dataset, nil
}
