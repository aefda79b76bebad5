package dice

import (
	game "campus_market/internal/game/dice"
	"campus_market/internal/model"
)

// Practice оценивает присланную руку в тренировочном режиме.
// Денег не двигает, возвращает ранг и очки
func (s *serv) Practice(faces []int) (*model.DicePracticeResult, error) {
	hand, err := game.FromSlice(faces)
	if err != nil {
		return nil, err
	}

	res, err := game.Evaluate(hand)
	if err != nil {
		return nil, err
	}

	return &model.DicePracticeResult{
		Hand:     hand,
		Rank:     res.Rank.String(),
		Tiebreak: res.Tiebreak,
		Score:    game.Score(res.Rank),
	}, nil
}
