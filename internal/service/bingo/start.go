package bingo

import (
	"context"
	"errors"
	"fmt"
	"time"

	game "campus_market/internal/game/bingo"
	"campus_market/internal/middleware"
	"campus_market/internal/model"
)

// Start открывает раунд: списывает ставку, генерирует карточку
// и последовательность выпадения фраз. Одна активная сессия на пользователя
func (s *serv) Start(ctx context.Context, req model.BingoStart) (*model.BingoStartResult, error) {
	// Валидация ставки по лимитам из конфига
	if req.Stake < s.gamesCfg.MinStake() || req.Stake > s.gamesCfg.MaxStake() {
		return nil, fmt.Errorf("stake must be between %d and %d", s.gamesCfg.MinStake(), s.gamesCfg.MaxStake())
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Запрет второго раунда, пока первый не закрыт
	if _, active := s.sessionRepo.Get(userID); active {
		return nil, errors.New("bingo round already in progress")
	}

	var res *model.BingoStartResult

	// Начало транзакции, где списывается ставка
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}
		if balance < req.Stake {
			return errors.New("not enough balance")
		}

		balance -= req.Stake
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		// Карточка и порядок выпадения фраз - независимые перемешивания пула
		card, err := game.GenerateCard()
		if err != nil {
			return err
		}
		callSeq, err := game.GenerateCallSequence()
		if err != nil {
			return err
		}

		s.sessionRepo.Save(&model.BingoSession{
			UserID:    userID,
			Stake:     req.Stake,
			Card:      card,
			CallSeq:   callSeq,
			StartedAt: time.Now(),
		})

		res = &model.BingoStartResult{
			Card:    card,
			Stake:   req.Stake,
			Balance: balance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
