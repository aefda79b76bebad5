package dice

import (
	"context"
	"errors"
	"fmt"

	game "campus_market/internal/game/dice"
	"campus_market/internal/middleware"
	"campus_market/internal/model"
)

// Победа в дуэли платит ставку в двойном размере
const winMultiplier = 2

// Play разыгрывает дуэль против бота: обе руки бросает сервер,
// ставка списывается и выплата начисляется в одной транзакции
func (s *serv) Play(ctx context.Context, req model.DicePlay) (*model.DicePlayResult, error) {
	// Валидация ставки по лимитам из конфига
	if req.Stake < s.gamesCfg.MinStake() || req.Stake > s.gamesCfg.MaxStake() {
		return nil, fmt.Errorf("stake must be between %d and %d", s.gamesCfg.MinStake(), s.gamesCfg.MaxStake())
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var res *model.DicePlayResult

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

		// Бросаем обе руки
		playerHand, err := game.Roll()
		if err != nil {
			return err
		}
		aiHand, err := game.Roll()
		if err != nil {
			return err
		}

		playerRes, err := game.Evaluate(playerHand)
		if err != nil {
			return err
		}
		aiRes, err := game.Evaluate(aiHand)
		if err != nil {
			return err
		}

		outcome := game.Compare(playerRes, aiRes)

		// Выплата: победа - двойная ставка, ничья - возврат ставки
		var payout int
		switch outcome {
		case game.OutcomePlayer:
			payout = req.Stake * winMultiplier
		case game.OutcomeTie:
			payout = req.Stake
		}

		balance += payout
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		// Записываем раунд
		_, err = s.roundRepo.CreateRound(txCtx, &model.GameRound{
			UserID:  userID,
			Game:    model.GameDice,
			Stake:   req.Stake,
			Payout:  payout,
			Outcome: string(outcome),
		})
		if err != nil {
			return errors.New("failed to record round")
		}

		res = &model.DicePlayResult{
			PlayerHand:     playerHand,
			AIHand:         aiHand,
			PlayerRank:     playerRes.Rank.String(),
			AIRank:         aiRes.Rank.String(),
			PlayerTiebreak: playerRes.Tiebreak,
			AITiebreak:     aiRes.Tiebreak,
			Outcome:        string(outcome),
			Payout:         payout,
			Balance:        balance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Обновляем статистику
	s.statsRepo.Record(model.GameDice, req.Stake, res.Payout)

	return res, nil
}
