package bingo

import (
	"context"
	"errors"

	"campus_market/internal/middleware"
	"campus_market/internal/model"
)

// Call открывает следующую фразу раунда.
// Отмечать можно только уже открытые фразы
func (s *serv) Call(ctx context.Context) (*model.BingoCallResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	session, active := s.sessionRepo.Get(userID)
	if !active {
		return nil, errors.New("no active bingo round")
	}

	// Лимит открытий на раунд из конфига
	limit := s.gamesCfg.MaxBingoCalls()
	if limit > len(session.CallSeq) {
		limit = len(session.CallSeq)
	}
	if session.Called >= limit {
		return nil, errors.New("no more calls in this round")
	}

	phrase := session.CallSeq[session.Called]
	session.Called++
	s.sessionRepo.Save(session)

	return &model.BingoCallResult{
		Phrase:    phrase,
		Called:    session.Called,
		Remaining: limit - session.Called,
	}, nil
}
