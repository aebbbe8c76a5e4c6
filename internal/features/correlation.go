package features

import (
	"math"
	"sort"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
	"github.com/rhekacitra/InsideOR-Project/pkg/utils"
)

// Pearson вычисляет коэффициент корреляции Пирсона по выровненным парам.
// nil - меньше двух пар; 0 - один из рядов постоянен.
func Pearson(a, b models.NamedSeries) *float64 {
	return PearsonPairs(PairByTime(a, b))
}

// PearsonPairs вычисляет коэффициент Пирсона по уже выровненным парам
func PearsonPairs(pairs []models.PairedPoint) *float64 {
	if len(pairs) < 2 {
		return nil
	}

	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.ValueA
		ys[i] = p.ValueB
	}

	// постоянство определяется по самим значениям: у 0.1, 0.1, 0.1
	// среднее не точное и сумма квадратов отклонений не нулевая
	zero := 0.0
	if utils.Min(xs) == utils.Max(xs) || utils.Min(ys) == utils.Max(ys) {
		return &zero
	}

	meanX := utils.Mean(xs)
	meanY := utils.Mean(ys)

	var num, denX, denY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		num += dx * dy
		denX += dx * dx
		denY += dy * dy
	}

	r := 0.0
	if denX != 0 && denY != 0 {
		r = num / math.Sqrt(denX*denY)
	}
	return &r
}

// ParamKeys собирает отсортированное объединение ключей всех случаев
func ParamKeys(cases []models.CaseRecord) []string {
	set := make(map[string]struct{})
	for _, c := range cases {
		for k := range c.Vitals {
			set[k] = struct{}{}
		}
		for k := range c.Interventions {
			set[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GlobalMatrix строит матрицу средних корреляций по всем случаям.
// Пара без единой валидной корреляции получает 0, диагональ всегда 1.
func GlobalMatrix(paramKeys []string, cases []models.CaseRecord) *models.CorrelationMatrix {
	matrix := models.NewCorrelationMatrix(paramKeys)

	for i := 0; i < len(paramKeys); i++ {
		for j := i; j < len(paramKeys); j++ {
			keyA, keyB := paramKeys[i], paramKeys[j]
			values := make([]float64, 0, len(cases))

			for _, c := range cases {
				seriesA := c.Series(keyA)
				seriesB := c.Series(keyB)
				if seriesA.Len() <= 1 || seriesB.Len() <= 1 {
					continue
				}
				if r := Pearson(seriesA, seriesB); r != nil {
					values = append(values, *r)
				}
			}

			avg := 0.0
			if len(values) > 0 {
				avg = utils.Mean(values)
			}
			matrix.Set(keyA, keyB, avg)
		}
	}

	for _, k := range paramKeys {
		matrix.Set(k, k, 1.0)
	}
	return matrix
}
