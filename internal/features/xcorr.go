package features

import (
	"math"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
	"github.com/rhekacitra/InsideOR-Project/pkg/utils"
)

// MinLagOverlap минимальное перекрытие рядов в отсчетах для оценки лага
const MinLagOverlap = 5

// XCorrFeatures максимум кросс-корреляции и лаг, на котором он достигнут
type XCorrFeatures struct {
	MaxAbs float64 `json:"maxabs"`
	Lag    int     `json:"lag"`
	Valid  bool    `json:"valid"`
}

// CalculateXCorr ищет лаг с максимальной |r| между выровненными значениями пары.
// Положительный лаг: значения X запаздывают относительно Y.
func CalculateXCorr(pairs []models.PairedPoint, maxLag int) XCorrFeatures {
	if len(pairs) < MinLagOverlap {
		return XCorrFeatures{}
	}

	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.ValueA
		ys[i] = p.ValueB
	}

	xMean, xStd := utils.Mean(xs), utils.Std(xs)
	yMean, yStd := utils.Mean(ys), utils.Std(ys)
	if !(xStd >= 1e-6) || !(yStd >= 1e-6) {
		return XCorrFeatures{}
	}

	// Z-score нормализация
	for i := range xs {
		xs[i] = (xs[i] - xMean) / xStd
		ys[i] = (ys[i] - yMean) / yStd
	}

	if maxLag < 0 {
		maxLag = -maxLag
	}
	// за пределами len-MinLagOverlap перекрытие всегда слишком короткое;
	// maxLag < 0 здесь возможен только для math.MinInt
	if limit := len(xs) - MinLagOverlap; maxLag < 0 || maxLag > limit {
		maxLag = limit
	}
	bestVal := 0.0
	bestLag := 0
	found := false

	for lag := -maxLag; lag <= maxLag; lag++ {
		var a, b []float64
		if lag >= 0 {
			if lag >= len(xs) {
				continue
			}
			a = xs[lag:]
			b = ys[:len(a)]
		} else {
			if -lag >= len(ys) {
				continue
			}
			b = ys[-lag:]
			a = xs[:len(b)]
		}

		if len(a) < MinLagOverlap {
			continue
		}

		corr := 0.0
		for i := range a {
			corr += a[i] * b[i]
		}
		corr /= float64(len(a))

		if !found || math.Abs(corr) > math.Abs(bestVal) {
			bestVal = corr
			bestLag = lag
			found = true
		}
	}

	if !found {
		return XCorrFeatures{}
	}
	return XCorrFeatures{MaxAbs: math.Abs(bestVal), Lag: bestLag, Valid: true}
}
