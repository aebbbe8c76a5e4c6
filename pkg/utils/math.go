package utils

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SafeFloat заменяет NaN и бесконечности нулем
func SafeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0
	}
	return v
}

// IsNumber сообщает, является ли значение конечным числом
func IsNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Percentile вычисляет процентиль с линейной интерполяцией между соседними рангами
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	index := (p / 100.0) * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Mean вычисляет среднее значение
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return stat.Mean(data, nil)
}

// Std вычисляет несмещенное стандартное отклонение
func Std(data []float64) float64 {
	if len(data) <= 1 {
		return math.NaN()
	}
	return stat.StdDev(data, nil)
}

// Min находит минимальное значение
func Min(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return floats.Min(data)
}

// Max находит максимальное значение
func Max(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return floats.Max(data)
}

// IQR вычисляет межквартильный размах
func IQR(data []float64) float64 {
	return Percentile(data, 75) - Percentile(data, 25)
}

// Diff вычисляет разности соседних элементов
func Diff(data []float64) []float64 {
	if len(data) <= 1 {
		return []float64{}
	}

	result := make([]float64, len(data)-1)
	for i := 1; i < len(data); i++ {
		result[i-1] = data[i] - data[i-1]
	}
	return result
}

// RMSSD корень из среднего квадрата последовательных разностей
func RMSSD(data []float64) float64 {
	diff := Diff(data)
	if len(diff) == 0 {
		return math.NaN()
	}
	return math.Sqrt(floats.Dot(diff, diff) / float64(len(diff)))
}
