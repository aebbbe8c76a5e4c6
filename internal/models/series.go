package models

import "math"

// WindowSize ширина видимого окна просмотрщика в секундах
const WindowSize = 600.0

// TimePoint одна точка временного ряда
type TimePoint struct {
	Time  float64 `json:"time"`  // Время в секундах от начала случая
	Value float64 `json:"value"` // Значение
}

// NamedSeries временной ряд одного параметра, упорядоченный по времени
type NamedSeries struct {
	Param  string      `json:"param"`
	Values []TimePoint `json:"values"`
}

// Len возвращает количество точек ряда
func (s NamedSeries) Len() int {
	return len(s.Values)
}

// MaxTime возвращает максимальную временную отметку ряда
func (s NamedSeries) MaxTime() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	max := s.Values[0].Time
	for _, p := range s.Values[1:] {
		if p.Time > max {
			max = p.Time
		}
	}
	return max, true
}

// CaseRecord все ряды одного случая. Не изменяется после загрузки.
type CaseRecord struct {
	CaseID        string                 `json:"caseid"`
	Vitals        map[string]NamedSeries `json:"vitals"`
	Interventions map[string]NamedSeries `json:"interventions"`
}

// Series ищет ряд параметра: сначала среди витальных, затем среди вмешательств.
// Отсутствующий ряд возвращается пустым.
func (c CaseRecord) Series(param string) NamedSeries {
	if s, ok := c.Vitals[param]; ok {
		return s
	}
	if s, ok := c.Interventions[param]; ok {
		return s
	}
	return NamedSeries{Param: param}
}

// Duration возвращает длительность случая по витальным показателям
func (c CaseRecord) Duration() float64 {
	duration := 0.0
	found := false
	for _, s := range c.Vitals {
		if t, ok := s.MaxTime(); ok && (!found || t > duration) {
			duration = t
			found = true
		}
	}
	return duration
}

// ParamKeys возвращает все ключи параметров случая
func (c CaseRecord) ParamKeys() []string {
	keys := make([]string, 0, len(c.Vitals)+len(c.Interventions))
	for k := range c.Vitals {
		keys = append(keys, k)
	}
	for k := range c.Interventions {
		if _, dup := c.Vitals[k]; !dup {
			keys = append(keys, k)
		}
	}
	return keys
}

// Window видимый интервал времени [Start, End]
type Window struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// NewWindow создает окно стандартной ширины, прижатое к [0, duration-WindowSize]
func NewWindow(start, duration float64) Window {
	start = ClampStart(start, duration)
	return Window{Start: start, End: start + WindowSize}
}

// ClampStart прижимает начало окна к допустимому диапазону
func ClampStart(start, duration float64) float64 {
	maxStart := math.Max(0, duration-WindowSize)
	if math.IsNaN(start) || start < 0 {
		return 0
	}
	if start > maxStart {
		return maxStart
	}
	return start
}

// PairedPoint пара значений двух рядов с совпадающей временной отметкой
type PairedPoint struct {
	Time   float64 `json:"t"`
	ValueA float64 `json:"x"`
	ValueB float64 `json:"y"`
}
