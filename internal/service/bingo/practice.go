package bingo

import (
	game "campus_market/internal/game/bingo"
	"campus_market/internal/model"
)

// Practice оценивает расстановку отметок в тренировочном режиме.
// Денег не двигает, возвращает конфигурацию и очки
func (s *serv) Practice(marks [5][5]bool) *model.BingoPracticeResult {
	var card game.Card
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			card[r][c].Marked = marks[r][c]
		}
	}
	// Центр бесплатный и отмечен всегда
	card[game.Size/2][game.Size/2] = game.Cell{Marked: true, FreeSpace: true}

	pattern := game.DetectPattern(card)

	return &model.BingoPracticeResult{
		Pattern: string(pattern),
		Points:  game.PracticePoints(pattern),
	}
}
