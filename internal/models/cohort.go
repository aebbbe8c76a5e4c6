package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rhekacitra/InsideOR-Project/pkg/utils"
)

// NullFloat64 число, которое может отсутствовать или прийти строкой
type NullFloat64 struct {
	sql.NullFloat64
}

// Float возвращает значение или NaN, если его нет
func (nf NullFloat64) Float() float64 {
	if !nf.Valid {
		return math.NaN()
	}
	return nf.Float64
}

// ParseNullFloat64 приводит строку к числу. Пустые, нечисловые строки и
// бесконечности ("Infinity", "inf") дают невалидное значение
func ParseNullFloat64(s string) NullFloat64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullFloat64{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NullFloat64{}
	}
	return finite(f)
}

func finite(f float64) NullFloat64 {
	if !utils.IsNumber(f) {
		return NullFloat64{}
	}
	return NullFloat64{sql.NullFloat64{Float64: f, Valid: true}}
}

// Scan реализует интерфейс Scanner для обработки пустых строк
func (nf *NullFloat64) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*nf = NullFloat64{}
		return nil
	case float64:
		*nf = finite(v)
		return nil
	case int64:
		*nf = NullFloat64{sql.NullFloat64{Float64: float64(v), Valid: true}}
		return nil
	case string:
		*nf = ParseNullFloat64(v)
		return nil
	case []byte:
		*nf = ParseNullFloat64(string(v))
		return nil
	}
	return fmt.Errorf("не удается конвертировать %T в NullFloat64", value)
}

// Value реализует интерфейс Valuer
func (nf NullFloat64) Value() (driver.Value, error) {
	if !nf.Valid {
		return nil, nil
	}
	return nf.Float64, nil
}

// MarshalJSON для корректной сериализации в JSON
func (nf NullFloat64) MarshalJSON() ([]byte, error) {
	if !nf.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nf.Float64)
}

// UnmarshalJSON принимает число, строку с числом, пустую строку или null
func (nf *NullFloat64) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*nf = NullFloat64{}
		if v {
			*nf = NullFloat64{sql.NullFloat64{Float64: 1, Valid: true}}
		}
		return nil
	default:
		return nf.Scan(v)
	}
}

// CohortNumericFields числовые поля таблицы пациентов
var CohortNumericFields = []string{
	"age", "height", "weight", "bmi", "asa", "emop",
	"surgery_time", "icu_days", "intraop_crystalloid",
	"intraop_rocu", "intraop_uo", "preop_alb",
}

// PatientRecord одна строка таблицы пациентов для когортной диаграммы
type PatientRecord struct {
	CaseID  string             `json:"caseid"`
	Sex     string             `json:"sex"`
	OpType  string             `json:"optype"`
	Numeric map[string]float64 `json:"-"`
	Raw     map[string]string  `json:"-"`
}

// Number возвращает числовое поле или NaN
func (p PatientRecord) Number(field string) float64 {
	if v, ok := p.Numeric[field]; ok {
		return v
	}
	return ParseNullFloat64(p.Raw[field]).Float()
}

// RawValue возвращает исходное строковое значение поля
func (p PatientRecord) RawValue(field string) string {
	return p.Raw[field]
}

// NewPatientRecord строит запись из строки CSV, приводя известные числовые поля
func NewPatientRecord(raw map[string]string) PatientRecord {
	rec := PatientRecord{
		CaseID:  raw["caseid"],
		Sex:     raw["sex"],
		OpType:  raw["optype"],
		Numeric: make(map[string]float64, len(CohortNumericFields)),
		Raw:     raw,
	}
	for _, field := range CohortNumericFields {
		rec.Numeric[field] = ParseNullFloat64(raw[field]).Float()
	}
	return rec
}

// PatientCard описательные поля случая для карточки пациента
type PatientCard struct {
	CaseID     string      `json:"caseid"`
	Department string      `json:"department"`
	OpName     string      `json:"opname"`
	OpType     string      `json:"optype"`
	Approach   string      `json:"approach"`
	Position   string      `json:"position"`
	Emergency  NullFloat64 `json:"emop"`
	Diagnosis  string      `json:"dx"`
	ASA        NullFloat64 `json:"asa"`
	Age        NullFloat64 `json:"age"`
	Sex        string      `json:"sex"`
	BMI        NullFloat64 `json:"bmi"`
	Height     NullFloat64 `json:"height"`

	// Исход госпитализации, секунды от начала операции
	Admission   NullFloat64 `json:"adm"`
	Discharge   NullFloat64 `json:"dis"`
	LOSPostop   NullFloat64 `json:"los_postop"`
	ICUDays     NullFloat64 `json:"icu_days"`
	DeathInHosp NullFloat64 `json:"death_inhosp"`
}

// DischargeSummary выписной эпикриз для карточки случая
type DischargeSummary struct {
	CaseID        string   `json:"case_id"`
	AdmissionDays *float64 `json:"admission_days"`
	DischargeDays *float64 `json:"discharge_days"`
	PostopStay    *float64 `json:"postop_stay_days"`
	ICUStay       *float64 `json:"icu_stay_days"`
	Deceased      bool     `json:"deceased"`
	Outcome       string   `json:"outcome"`
}

// UnmarshalJSON допускает числовой или строковый caseid
func (c *PatientCard) UnmarshalJSON(data []byte) error {
	type plain PatientCard
	var aux struct {
		plain
		CaseID json.RawMessage `json:"caseid"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = PatientCard(aux.plain)
	c.CaseID = ""
	if id := strings.TrimSpace(string(aux.CaseID)); id != "" && id != "null" {
		c.CaseID = strings.Trim(id, `"`)
	}
	return nil
}
