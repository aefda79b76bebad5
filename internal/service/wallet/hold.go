package wallet

import (
	"context"
	"errors"

	"campus_market/internal/middleware"
	"campus_market/internal/model"
	"campus_market/internal/pricing"

	"github.com/shopspring/decimal"
)

// Hold замораживает залог под покупку: 5% от суммы сделки
// списываются с баланса и фиксируются в леджере раундов
func (s *serv) Hold(ctx context.Context, amount int) (*model.EscrowHold, error) {
	if amount <= 0 {
		return nil, errors.New("hold amount must be positive")
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	deposit := int(pricing.SecurityDeposit(decimal.NewFromInt(int64(amount))).IntPart())
	if deposit <= 0 {
		return nil, errors.New("amount too small for a deposit")
	}

	var res *model.EscrowHold

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}
		if balance < deposit {
			return errors.New("not enough balance")
		}

		balance -= deposit
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		// Фиксируем залог в леджере
		_, err = s.roundRepo.CreateRound(txCtx, &model.GameRound{
			UserID:  userID,
			Game:    model.LedgerEscrow,
			Stake:   deposit,
			Outcome: "hold",
		})
		if err != nil {
			return errors.New("failed to record hold")
		}

		res = &model.EscrowHold{
			Amount:  amount,
			Deposit: deposit,
			Balance: balance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
