package wallet

import (
	"context"
	"errors"

	"campus_market/internal/middleware"
	"campus_market/internal/model"
)

// Лимит истории по умолчанию и потолок на запрос
const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// History возвращает последние раунды пользователя
func (s *serv) History(ctx context.Context, limit int) ([]model.GameRound, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	return s.roundRepo.GetRecentRounds(ctx, userID, limit)
}
