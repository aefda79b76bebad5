package wallet

import (
	"context"
	"errors"

	"campus_market/internal/middleware"
	"campus_market/internal/pricing"
)

// Withdraw выводит средства. Правило допуска - в pricing.IsWithdrawalAllowed.
// Возвращает баланс после вывода
func (s *serv) Withdraw(ctx context.Context, amount int) (int, error) {
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

		if !pricing.IsWithdrawalAllowed(current, amount) {
			return errors.New("withdrawal not allowed")
		}

		balance = current - amount
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

// Balance возвращает текущий баланс пользователя
func (s *serv) Balance(ctx context.Context) (int, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}

	return s.userRepo.GetBalance(ctx, userID)
}
