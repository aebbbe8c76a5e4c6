package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 0.0, SafeFloat(math.NaN()))
	assert.Equal(t, 0.0, SafeFloat(math.Inf(-1)))
	assert.Equal(t, 2.5, SafeFloat(2.5))
}

func TestPercentile(t *testing.T) {
	data := []float64{4, 1, 3, 2}

	assert.Equal(t, 1.0, Percentile(data, 0))
	assert.Equal(t, 4.0, Percentile(data, 100))
	assert.InDelta(t, 2.5, Percentile(data, 50), 1e-12)
	assert.InDelta(t, 1.75, Percentile(data, 25), 1e-12)
	assert.True(t, math.IsNaN(Percentile(nil, 50)))
	// исходный срез не сортируется
	assert.Equal(t, []float64{4, 1, 3, 2}, data)
}

func TestMeanStd(t *testing.T) {
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
	assert.InDelta(t, 1.0, Std([]float64{1, 2, 3}), 1e-12)
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(Std([]float64{1})))
}

func TestMinMax(t *testing.T) {
	data := []float64{3, -1, 7}
	assert.Equal(t, -1.0, Min(data))
	assert.Equal(t, 7.0, Max(data))
	assert.True(t, math.IsNaN(Min(nil)))
	assert.True(t, math.IsNaN(Max(nil)))
}

func TestDiffRMSSD(t *testing.T) {
	assert.Equal(t, []float64{2, -1}, Diff([]float64{1, 3, 2}))
	assert.Empty(t, Diff([]float64{1}))

	assert.InDelta(t, math.Sqrt(2.5), RMSSD([]float64{1, 3, 2}), 1e-12)
	assert.True(t, math.IsNaN(RMSSD([]float64{1})))
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{0, "00:00:00"},
		{59.9, "00:00:59"},
		{600, "00:10:00"},
		{3723, "01:02:03"},
		{-5, "00:00:00"},
		{math.NaN(), "00:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHMS(tt.sec))
	}
	assert.Equal(t, "62:03", FormatMMSS(3723))
}
