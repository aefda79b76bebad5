package bingo

import (
	"math"

	"campus_market/pkg/random"
)

const (
	// Размер карточки
	Size = 5
	// Центральная клетка - бесплатная
	centerRow = 2
	centerCol = 2
	// База для начисления очков в тренировочном режиме
	practiceBase = 100
)

// Cell - клетка карточки
type Cell struct {
	Phrase    string
	Marked    bool
	FreeSpace bool
}

// Card - карточка бинго 5x5
type Card [Size][Size]Cell

// Pattern - выигрышная конфигурация отметок
type Pattern string

const (
	PatternNone        Pattern = "none"
	PatternLine        Pattern = "line"
	PatternFourCorners Pattern = "four_corners"
	PatternFullHouse   Pattern = "full_house"
)

// multiplierTable - множители ставки по конфигурациям
var multiplierTable = map[Pattern]float64{
	PatternLine:        0.20,
	PatternFourCorners: 0.30,
	PatternFullHouse:   0.50,
}

// Multiplier возвращает множитель ставки для конфигурации. 0 для none
func Multiplier(p Pattern) float64 {
	return multiplierTable[p]
}

// GenerateCard генерирует карточку: пул перемешивается по Фишеру-Йетсу,
// 24 фразы раскладываются построчно вокруг центральной бесплатной клетки
func GenerateCard() (Card, error) {
	var card Card

	pool := make([]string, len(phrasePool))
	copy(pool, phrasePool)
	if err := random.Shuffle(pool); err != nil {
		return card, err
	}

	next := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if r == centerRow && c == centerCol {
				card[r][c] = Cell{Marked: true, FreeSpace: true}
				continue
			}
			card[r][c] = Cell{Phrase: pool[next]}
			next++
		}
	}

	return card, nil
}

// GenerateCallSequence независимо перемешивает весь пул -
// это порядок, в котором фразы "выпадают" в раунде
func GenerateCallSequence() ([]string, error) {
	seq := make([]string, len(phrasePool))
	copy(seq, phrasePool)
	if err := random.Shuffle(seq); err != nil {
		return nil, err
	}
	return seq, nil
}

// DetectPattern возвращает лучшую достигнутую конфигурацию.
// Фулл-хаус покрывает углы и линии, поэтому проверки идут от сильной к слабой
func DetectPattern(card Card) Pattern {
	if fullHouse(card) {
		return PatternFullHouse
	}
	if fourCorners(card) {
		return PatternFourCorners
	}
	if anyLine(card) {
		return PatternLine
	}
	return PatternNone
}

func fullHouse(card Card) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !card[r][c].Marked {
				return false
			}
		}
	}
	return true
}

func fourCorners(card Card) bool {
	return card[0][0].Marked &&
		card[0][Size-1].Marked &&
		card[Size-1][0].Marked &&
		card[Size-1][Size-1].Marked
}

func anyLine(card Card) bool {
	// Строки и столбцы
	for i := 0; i < Size; i++ {
		rowFull, colFull := true, true
		for j := 0; j < Size; j++ {
			if !card[i][j].Marked {
				rowFull = false
			}
			if !card[j][i].Marked {
				colFull = false
			}
		}
		if rowFull || colFull {
			return true
		}
	}

	// Обе диагонали
	mainFull, antiFull := true, true
	for i := 0; i < Size; i++ {
		if !card[i][i].Marked {
			mainFull = false
		}
		if !card[i][Size-1-i].Marked {
			antiFull = false
		}
	}
	return mainFull || antiFull
}

// Payout считает выплату за конфигурацию: множитель от ставки
func Payout(p Pattern, stake int) int {
	return int(math.Round(float64(stake) * multiplierTable[p]))
}

// PracticePoints считает очки в тренировочном режиме: множитель от базы 100
func PracticePoints(p Pattern) int {
	return int(math.Round(practiceBase * multiplierTable[p]))
}
