package converter

import (
	"time"

	dto "campus_market/internal/api/dto/wallet"
	"campus_market/internal/model"
)

func ToHoldResponse(res model.EscrowHold) dto.HoldResponse {
	return dto.HoldResponse{
		Amount:  res.Amount,
		Deposit: res.Deposit,
		Balance: res.Balance,
	}
}

func ToBalanceResponse(balance int) dto.BalanceResponse {
	return dto.BalanceResponse{
		Balance: balance,
	}
}

func ToHistoryResponse(rounds []model.GameRound) dto.HistoryResponse {
	out := make([]dto.Round, len(rounds))
	for i, r := range rounds {
		out[i] = dto.Round{
			ID:        r.ID,
			Game:      r.Game,
			Stake:     r.Stake,
			Payout:    r.Payout,
			Outcome:   r.Outcome,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
	}
	return dto.HistoryResponse{Rounds: out}
}
