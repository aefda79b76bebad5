package bingo

import (
	"context"
	"errors"

	game "campus_market/internal/game/bingo"
	"campus_market/internal/middleware"
	"campus_market/internal/model"
)

// Mark отмечает клетку с фразой. Фраза должна быть уже открыта через Call
func (s *serv) Mark(ctx context.Context, phrase string) (*model.BingoMarkResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	session, active := s.sessionRepo.Get(userID)
	if !active {
		return nil, errors.New("no active bingo round")
	}

	// Фраза открыта?
	called := false
	for i := 0; i < session.Called; i++ {
		if session.CallSeq[i] == phrase {
			called = true
			break
		}
	}
	if !called {
		return nil, errors.New("phrase has not been called yet")
	}

	// Ищем клетку на карточке
	found := false
	for r := 0; r < game.Size && !found; r++ {
		for c := 0; c < game.Size; c++ {
			cell := &session.Card[r][c]
			if cell.FreeSpace || cell.Phrase != phrase {
				continue
			}
			if cell.Marked {
				return nil, errors.New("cell already marked")
			}
			cell.Marked = true
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New("phrase is not on the card")
	}

	s.sessionRepo.Save(session)

	return &model.BingoMarkResult{
		Card:    session.Card,
		Pattern: string(game.DetectPattern(session.Card)),
	}, nil
}
