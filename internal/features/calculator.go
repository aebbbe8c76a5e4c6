package features

import (
	"sort"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
	"github.com/rhekacitra/InsideOR-Project/pkg/utils"
)

// FrameBuilder строит кадры просмотрщика для одного случая
type FrameBuilder struct {
	record     models.CaseRecord
	duration   float64
	vitalRange [2]float64
}

// NewFrameBuilder создает построитель кадров и считает диапазон оси витальных показателей
func NewFrameBuilder(record models.CaseRecord) *FrameBuilder {
	return &FrameBuilder{
		record:     record,
		duration:   record.Duration(),
		vitalRange: vitalRange(record),
	}
}

// Duration возвращает длительность случая
func (fb *FrameBuilder) Duration() float64 {
	return fb.duration
}

// Window возвращает прижатое окно для заданного начала
func (fb *FrameBuilder) Window(start float64) models.Window {
	return models.NewWindow(start, fb.duration)
}

// Frame строит кадр для окна, начинающегося в start
func (fb *FrameBuilder) Frame(start float64) models.Frame {
	w := fb.Window(start)

	frame := models.Frame{
		CaseID:        fb.record.CaseID,
		Window:        w,
		Duration:      fb.duration,
		TimeLabel:     utils.FormatHMS(w.Start),
		Vitals:        make(map[string][]models.TimePoint, len(fb.record.Vitals)),
		Interventions: make(map[string][]models.TimePoint, len(fb.record.Interventions)),
		VitalRange:    fb.vitalRange,
	}

	for _, param := range sortedKeys(fb.record.Vitals) {
		series := fb.record.Vitals[param]
		frame.Vitals[param] = WindowSlice(series, w)
		frame.LiveVitals = append(frame.LiveVitals, liveValue(param, series, w))
	}
	for _, param := range sortedKeys(fb.record.Interventions) {
		series := fb.record.Interventions[param]
		frame.Interventions[param] = WindowSlice(series, w)
		frame.LiveInterventions = append(frame.LiveInterventions, liveValue(param, series, w))
	}

	return frame
}

// Stats считает статистику всех рядов в окне
func (fb *FrameBuilder) Stats(start float64) models.WindowStatsResponse {
	w := fb.Window(start)
	resp := models.WindowStatsResponse{
		CaseID:        fb.record.CaseID,
		Window:        w,
		Vitals:        make([]models.SeriesStats, 0, len(fb.record.Vitals)),
		Interventions: make([]models.SeriesStats, 0, len(fb.record.Interventions)),
	}
	for _, param := range sortedKeys(fb.record.Vitals) {
		resp.Vitals = append(resp.Vitals, CalculateSeriesStats(param, WindowSlice(fb.record.Vitals[param], w)))
	}
	for _, param := range sortedKeys(fb.record.Interventions) {
		resp.Interventions = append(resp.Interventions, CalculateSeriesStats(param, WindowSlice(fb.record.Interventions[param], w)))
	}
	return resp
}

// CalculateSeriesStats вычисляет статистику точек, NaN заменяются нулями
func CalculateSeriesStats(param string, points []models.TimePoint) models.SeriesStats {
	values := Values(points)
	return models.SeriesStats{
		Param: param,
		Count: len(values),
		Mean:  utils.SafeFloat(utils.Mean(values)),
		Std:   utils.SafeFloat(utils.Std(values)),
		Min:   utils.SafeFloat(utils.Min(values)),
		Max:   utils.SafeFloat(utils.Max(values)),
		IQR:   utils.SafeFloat(utils.IQR(values)),
		RMSSD: utils.SafeFloat(utils.RMSSD(values)),
	}
}

// Values извлекает значения точек
func Values(points []models.TimePoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}

func liveValue(param string, series models.NamedSeries, w models.Window) models.LiveValue {
	lv := models.LiveValue{Param: param}
	if p, ok := LastAtOrBefore(series, w.End); ok {
		v := p.Value
		lv.Value = &v
	}
	return lv
}

// vitalRange диапазон оси: [min*0.9, max*1.1] по всем витальным показателям
func vitalRange(record models.CaseRecord) [2]float64 {
	var all []float64
	for _, s := range record.Vitals {
		all = append(all, Values(s.Values)...)
	}
	if len(all) == 0 {
		return [2]float64{0, 0}
	}
	return [2]float64{utils.Min(all) * 0.9, utils.Max(all) * 1.1}
}

func sortedKeys(m map[string]models.NamedSeries) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
