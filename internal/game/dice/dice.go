package dice

import (
	"errors"
	"sort"

	"campus_market/pkg/random"
)

const (
	// Количество кубиков в руке
	HandSize = 5
	// Грани кубика
	minFace = 1
	maxFace = 6
)

// ErrInvalidHand - некорректная рука (неверная длина или значения вне [1,6])
var ErrInvalidHand = errors.New("invalid dice hand")

// Hand - рука из 5 кубиков
type Hand [HandSize]int

// Rank - ранг покерной комбинации на кубиках. Чем больше значение, тем сильнее
type Rank int

const (
	HighCard Rank = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// String возвращает имя ранга для клиента
func (r Rank) String() string {
	switch r {
	case FiveOfAKind:
		return "five_of_a_kind"
	case FourOfAKind:
		return "four_of_a_kind"
	case FullHouse:
		return "full_house"
	case Straight:
		return "straight"
	case ThreeOfAKind:
		return "three_of_a_kind"
	case TwoPair:
		return "two_pair"
	case OnePair:
		return "one_pair"
	default:
		return "high_card"
	}
}

// scoreTable - очки за комбинацию в тренировочном режиме
var scoreTable = map[Rank]int{
	FiveOfAKind:  100,
	FourOfAKind:  80,
	FullHouse:    70,
	Straight:     60,
	ThreeOfAKind: 50,
	TwoPair:      40,
	OnePair:      30,
	HighCard:     20,
}

// Score возвращает очки за ранг в тренировочном режиме
func Score(r Rank) int {
	return scoreTable[r]
}

// HandResult - результат оценки руки
type HandResult struct {
	Rank     Rank
	Tiebreak []int
}

// Outcome - исход сравнения двух рук
type Outcome string

const (
	OutcomePlayer Outcome = "player"
	OutcomeAI     Outcome = "ai"
	OutcomeTie    Outcome = "tie"
)

// FromSlice собирает руку из слайса. Ошибка, если длина не равна 5
func FromSlice(faces []int) (Hand, error) {
	var h Hand
	if len(faces) != HandSize {
		return h, ErrInvalidHand
	}
	copy(h[:], faces)
	return h, nil
}

// Roll бросает 5 кубиков через криптографический ГСЧ
func Roll() (Hand, error) {
	var h Hand
	for i := range h {
		n, err := random.IntN(maxFace)
		if err != nil {
			return h, err
		}
		h[i] = n + 1
	}
	return h, nil
}

// Evaluate оценивает руку и возвращает ранг с тайбрейком.
// Порядок кубиков не влияет на результат
func Evaluate(h Hand) (HandResult, error) {
	// Валидация значений
	for _, face := range h {
		if face < minFace || face > maxFace {
			return HandResult{}, ErrInvalidHand
		}
	}

	// Частоты граней
	counts := make(map[int]int, HandSize)
	for _, face := range h {
		counts[face]++
	}

	// Грани по убыванию количества, при равенстве - по убыванию грани.
	// Первый элемент - самая частая грань
	faces := make([]int, 0, len(counts))
	for face := range counts {
		faces = append(faces, face)
	}
	sort.Slice(faces, func(i, j int) bool {
		if counts[faces[i]] != counts[faces[j]] {
			return counts[faces[i]] > counts[faces[j]]
		}
		return faces[i] > faces[j]
	})

	// Лесенка комбинаций, первое совпадение выигрывает
	switch {
	case counts[faces[0]] == 5:
		return HandResult{Rank: FiveOfAKind, Tiebreak: []int{faces[0]}}, nil

	case counts[faces[0]] == 4:
		return HandResult{Rank: FourOfAKind, Tiebreak: []int{faces[0]}}, nil

	case counts[faces[0]] == 3 && len(faces) == 2:
		return HandResult{Rank: FullHouse, Tiebreak: []int{faces[0], faces[1]}}, nil

	case len(faces) == 5 && faces[0]-faces[4] == 4:
		// 5 разных граней подряд: max-min == 4
		return HandResult{Rank: Straight, Tiebreak: []int{faces[0]}}, nil

	case counts[faces[0]] == 3:
		return HandResult{Rank: ThreeOfAKind, Tiebreak: []int{faces[0]}}, nil

	case counts[faces[0]] == 2 && counts[faces[1]] == 2:
		return HandResult{Rank: TwoPair, Tiebreak: []int{faces[0], faces[1]}}, nil

	case counts[faces[0]] == 2:
		return HandResult{Rank: OnePair, Tiebreak: []int{faces[0]}}, nil

	default:
		// Старшая карта: все 5 граней по убыванию
		return HandResult{Rank: HighCard, Tiebreak: faces}, nil
	}
}

// Compare сравнивает две руки. Сначала ранг, при равенстве - тайбрейк поэлементно
func Compare(player, ai HandResult) Outcome {
	if player.Rank != ai.Rank {
		if player.Rank > ai.Rank {
			return OutcomePlayer
		}
		return OutcomeAI
	}

	for i := 0; i < len(player.Tiebreak) && i < len(ai.Tiebreak); i++ {
		if player.Tiebreak[i] != ai.Tiebreak[i] {
			if player.Tiebreak[i] > ai.Tiebreak[i] {
				return OutcomePlayer
			}
			return OutcomeAI
		}
	}

	return OutcomeTie
}
