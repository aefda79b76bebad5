package bingo

import (
	"context"
	"errors"

	game "campus_market/internal/game/bingo"
	"campus_market/internal/middleware"
	"campus_market/internal/model"
)

// Claim закрывает раунд: считает лучшую достигнутую конфигурацию,
// начисляет выплату и пишет раунд в историю
func (s *serv) Claim(ctx context.Context) (*model.BingoClaimResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	session, active := s.sessionRepo.Get(userID)
	if !active {
		return nil, errors.New("no active bingo round")
	}

	pattern := game.DetectPattern(session.Card)
	payout := game.Payout(pattern, session.Stake)

	var res *model.BingoClaimResult

	// Начало транзакции, где начисляется выплата
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}

		balance += payout
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		outcome := string(pattern)
		if pattern == game.PatternNone {
			outcome = "lose"
		}

		// Записываем раунд
		_, err = s.roundRepo.CreateRound(txCtx, &model.GameRound{
			UserID:  userID,
			Game:    model.GameBingo,
			Stake:   session.Stake,
			Payout:  payout,
			Outcome: outcome,
		})
		if err != nil {
			return errors.New("failed to record round")
		}

		res = &model.BingoClaimResult{
			Pattern: string(pattern),
			Payout:  payout,
			Balance: balance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Раунд закрыт
	s.sessionRepo.Delete(userID)

	// Обновляем статистику
	s.statsRepo.Record(model.GameBingo, session.Stake, payout)

	return res, nil
}
