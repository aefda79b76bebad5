package wheel

import (
	"context"
	"errors"
	"fmt"

	game "campus_market/internal/game/wheel"
	"campus_market/internal/middleware"
	"campus_market/internal/model"
)

// Spin крутит колесо: один розыгрыш сегмента, списание ставки
// и начисление выплаты в одной транзакции
func (s *serv) Spin(ctx context.Context, req model.WheelSpin) (*model.WheelSpinResult, error) {
	// Валидация ставки по лимитам из конфига
	if req.Stake < s.gamesCfg.MinStake() || req.Stake > s.gamesCfg.MaxStake() {
		return nil, fmt.Errorf("stake must be between %d and %d", s.gamesCfg.MinStake(), s.gamesCfg.MaxStake())
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var res *model.WheelSpinResult

	// Начало транзакции, где выполняется раунд
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Получаем баланс пользователя
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}
		if balance < req.Stake {
			return errors.New("not enough balance")
		}

		// Списание ставки
		balance -= req.Stake

		// Розыгрыш сегмента
		idx, seg, err := game.Select()
		if err != nil {
			return err
		}

		payout := game.Payout(req.Stake, seg.Multiplier)
		balance += payout

		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		// x1 - возврат ставки, в истории отмечаем отдельно
		outcome := "break_even"
		if game.IsWin(seg.Multiplier) {
			outcome = "win"
		}

		// Записываем раунд
		_, err = s.roundRepo.CreateRound(txCtx, &model.GameRound{
			UserID:  userID,
			Game:    model.GameWheel,
			Stake:   req.Stake,
			Payout:  payout,
			Outcome: outcome,
		})
		if err != nil {
			return errors.New("failed to record round")
		}

		res = &model.WheelSpinResult{
			Index:      idx,
			Multiplier: seg.Multiplier,
			Win:        game.IsWin(seg.Multiplier),
			Payout:     payout,
			Balance:    balance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Обновляем статистику
	s.statsRepo.Record(model.GameWheel, req.Stake, res.Payout)

	return res, nil
}
