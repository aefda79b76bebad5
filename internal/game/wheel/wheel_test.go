package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentTable(t *testing.T) {
	segs := Segments()
	require.Len(t, segs[:], 16)

	assert.InDelta(t, 200.0, TotalWeight(), 1e-9)

	// Разрешенные множители и положительные веса
	allowed := map[int]bool{1: true, 2: true, 5: true, 10: true, 50: true, 100: true}
	jackpots := 0
	for _, s := range segs {
		assert.True(t, allowed[s.Multiplier], "multiplier %d", s.Multiplier)
		assert.Greater(t, s.Weight, 0.0)
		if s.Multiplier == 100 {
			jackpots++
			assert.InDelta(t, 0.15, s.Weight, 1e-9)
		}
	}
	assert.Equal(t, 1, jackpots)
}

// Частоты выбора должны сходиться к weight/totalWeight,
// а не к долям сегментов на отрисованном круге
func TestSelectDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	const draws = 100000

	counts := make([]int, 16)
	for i := 0; i < draws; i++ {
		idx, seg, err := Select()
		require.NoError(t, err)
		require.Equal(t, segments[idx].Multiplier, seg.Multiplier)
		counts[idx]++
	}

	for i, s := range segments {
		expected := s.Weight / TotalWeight()
		got := float64(counts[i]) / draws

		// Допуск: 4 сигмы биномиального распределения плюс зазор для редких сегментов
		sigma := math.Sqrt(expected * (1 - expected) / draws)
		tolerance := 4*sigma + 0.0005
		assert.InDelta(t, expected, got, tolerance, "segment %d multiplier %d", i, s.Multiplier)
	}
}

func TestPayout(t *testing.T) {
	assert.Equal(t, 500, Payout(500, 1))
	assert.Equal(t, 1000, Payout(500, 2))
	assert.Equal(t, 50000, Payout(500, 100))
}

func TestIsWin(t *testing.T) {
	// Множитель 1 возвращает ставку, но выигрышем не считается
	assert.False(t, IsWin(1))
	assert.True(t, IsWin(2))
	assert.True(t, IsWin(100))
}
