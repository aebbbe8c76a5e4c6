package features

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

func TestCalculateXCorrFindsLag(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := make([]float64, 60)
	for i := range base {
		base[i] = rng.Float64() * 10
	}

	// X запаздывает относительно Y на 3 отсчета
	const shift = 3
	pairs := make([]models.PairedPoint, len(base))
	for i := range base {
		pairs[i] = models.PairedPoint{
			Time:   float64(i),
			ValueA: base[(i-shift+len(base))%len(base)],
			ValueB: base[i],
		}
	}

	got := CalculateXCorr(pairs, 10)
	assert.True(t, got.Valid)
	assert.Equal(t, shift, got.Lag)
	assert.Greater(t, got.MaxAbs, 0.8)
}

func TestCalculateXCorrZeroLagForIdenticalSeries(t *testing.T) {
	pairs := make([]models.PairedPoint, 20)
	for i := range pairs {
		v := float64((i * 7) % 11)
		pairs[i] = models.PairedPoint{Time: float64(i), ValueA: v, ValueB: v}
	}

	got := CalculateXCorr(pairs, 0)
	assert.True(t, got.Valid)
	assert.Equal(t, 0, got.Lag)
	assert.InDelta(t, 0.95, got.MaxAbs, 0.05)
}

func TestCalculateXCorrDegenerate(t *testing.T) {
	short := []models.PairedPoint{{Time: 0, ValueA: 1, ValueB: 2}, {Time: 1, ValueA: 2, ValueB: 3}}
	assert.Equal(t, XCorrFeatures{}, CalculateXCorr(short, 5))

	constant := make([]models.PairedPoint, 10)
	for i := range constant {
		constant[i] = models.PairedPoint{Time: float64(i), ValueA: 5, ValueB: float64(i)}
	}
	assert.False(t, CalculateXCorr(constant, 5).Valid)
}

func TestCalculateXCorrClampsLargeLag(t *testing.T) {
	pairs := make([]models.PairedPoint, 10)
	for i := range pairs {
		pairs[i] = models.PairedPoint{Time: float64(i), ValueA: float64(i * i % 7), ValueB: float64(i % 4)}
	}
	clamped := CalculateXCorr(pairs, len(pairs)-MinLagOverlap)
	assert.True(t, clamped.Valid)

	for _, lag := range []int{len(pairs), 1 << 20, math.MaxInt32, math.MaxInt, math.MinInt} {
		started := time.Now()
		got := CalculateXCorr(pairs, lag)
		assert.Less(t, time.Since(started), 100*time.Millisecond, "lag %d", lag)
		assert.Equal(t, clamped, got, "lag %d", lag)
	}
}
