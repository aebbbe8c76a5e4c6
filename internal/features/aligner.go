package features

import (
	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

// WindowSlice возвращает точки ряда с start <= time <= end в исходном порядке.
// Граничные точки включаются, интерполяции нет.
func WindowSlice(series models.NamedSeries, w models.Window) []models.TimePoint {
	result := make([]models.TimePoint, 0)
	for _, p := range series.Values {
		if p.Time >= w.Start && p.Time <= w.End {
			result = append(result, p)
		}
	}
	return result
}

// PairByTime соединяет два ряда по точному совпадению временной отметки.
// Порядок следует ряду a, точки без пары отбрасываются.
// При повторяющихся отметках в b остается последняя по индексу точка.
func PairByTime(a, b models.NamedSeries) []models.PairedPoint {
	result := make([]models.PairedPoint, 0)
	if len(a.Values) == 0 || len(b.Values) == 0 {
		return result
	}

	lookup := make(map[float64]float64, len(b.Values))
	for _, p := range b.Values {
		lookup[p.Time] = p.Value
	}

	for _, p := range a.Values {
		if v, ok := lookup[p.Time]; ok {
			result = append(result, models.PairedPoint{
				Time:   p.Time,
				ValueA: p.Value,
				ValueB: v,
			})
		}
	}
	return result
}

// LastAtOrBefore возвращает последнюю точку ряда с time <= t
func LastAtOrBefore(series models.NamedSeries, t float64) (models.TimePoint, bool) {
	var last models.TimePoint
	found := false
	for _, p := range series.Values {
		if p.Time <= t {
			last = p
			found = true
		}
	}
	return last, found
}
