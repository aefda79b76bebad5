package bingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCard(t *testing.T) {
	card, err := GenerateCard()
	require.NoError(t, err)

	// Центр - бесплатная клетка, отмечена заранее
	center := card[2][2]
	assert.True(t, center.FreeSpace)
	assert.True(t, center.Marked)
	assert.Empty(t, center.Phrase)

	// 24 уникальных фразы из пула, остальные клетки не отмечены
	seen := make(map[string]bool)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if r == 2 && c == 2 {
				continue
			}
			cell := card[r][c]
			assert.False(t, cell.FreeSpace)
			assert.False(t, cell.Marked)
			assert.False(t, seen[cell.Phrase], "duplicate phrase %q", cell.Phrase)
			seen[cell.Phrase] = true
		}
	}
	assert.Len(t, seen, 24)

	// Все фразы из фиксированного пула
	pool := make(map[string]bool, PoolSize())
	for _, p := range phrasePool {
		pool[p] = true
	}
	for phrase := range seen {
		assert.True(t, pool[phrase], "phrase %q not from pool", phrase)
	}
}

func TestGenerateCallSequence(t *testing.T) {
	seq, err := GenerateCallSequence()
	require.NoError(t, err)
	require.Len(t, seq, PoolSize())

	// Перестановка пула без повторов
	seen := make(map[string]bool, len(seq))
	for _, p := range seq {
		assert.False(t, seen[p])
		seen[p] = true
	}
}

func markedCard(cells ...[2]int) Card {
	var card Card
	card[2][2] = Cell{Marked: true, FreeSpace: true}
	for _, rc := range cells {
		card[rc[0]][rc[1]].Marked = true
	}
	return card
}

func TestDetectPattern(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		card := markedCard([2]int{0, 0}, [2]int{1, 3})
		assert.Equal(t, PatternNone, DetectPattern(card))
	})

	t.Run("row line", func(t *testing.T) {
		card := markedCard([2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4})
		assert.Equal(t, PatternLine, DetectPattern(card))
	})

	t.Run("column line", func(t *testing.T) {
		card := markedCard([2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3})
		assert.Equal(t, PatternLine, DetectPattern(card))
	})

	t.Run("diagonal uses free space", func(t *testing.T) {
		// Центр уже отмечен, диагонали хватает 4 отметок
		card := markedCard([2]int{0, 0}, [2]int{1, 1}, [2]int{3, 3}, [2]int{4, 4})
		assert.Equal(t, PatternLine, DetectPattern(card))
	})

	t.Run("four corners beats line", func(t *testing.T) {
		card := markedCard(
			[2]int{0, 0}, [2]int{0, 4}, [2]int{4, 0}, [2]int{4, 4},
			[2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4},
		)
		assert.Equal(t, PatternFourCorners, DetectPattern(card))
	})

	t.Run("full house beats everything", func(t *testing.T) {
		var card Card
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				card[r][c].Marked = true
			}
		}
		// Углы и линии тоже закрыты, но приоритет у фулл-хауса
		assert.Equal(t, PatternFullHouse, DetectPattern(card))
	})
}

func TestPayout(t *testing.T) {
	assert.Equal(t, 200, Payout(PatternLine, 1000))
	assert.Equal(t, 300, Payout(PatternFourCorners, 1000))
	assert.Equal(t, 500, Payout(PatternFullHouse, 1000))
	assert.Equal(t, 0, Payout(PatternNone, 1000))

	// Округление половины вверх
	assert.Equal(t, 3, Payout(PatternFourCorners, 9))
}

func TestPracticePoints(t *testing.T) {
	assert.Equal(t, 20, PracticePoints(PatternLine))
	assert.Equal(t, 30, PracticePoints(PatternFourCorners))
	assert.Equal(t, 50, PracticePoints(PatternFullHouse))
	assert.Equal(t, 0, PracticePoints(PatternNone))
}
