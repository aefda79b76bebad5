package wallet

import (
	"context"
	"errors"

	"campus_market/internal/middleware"
)

// Deposit пополняет кошелек. Возвращает баланс после пополнения
func (s *serv) Deposit(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return 0, errors.New("deposit amount must be positive")
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}

	var balance int

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}

		balance = current + amount
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}
