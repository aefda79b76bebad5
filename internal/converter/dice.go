package converter

import (
	dto "campus_market/internal/api/dto/dice"
	"campus_market/internal/model"
)

func ToDicePlay(req dto.PlayRequest) model.DicePlay {
	return model.DicePlay{
		Stake: req.Stake,
	}
}

func ToDicePlayResponse(res model.DicePlayResult) dto.PlayResponse {
	return dto.PlayResponse{
		PlayerHand:     res.PlayerHand,
		AIHand:         res.AIHand,
		PlayerRank:     res.PlayerRank,
		AIRank:         res.AIRank,
		PlayerTiebreak: res.PlayerTiebreak,
		AITiebreak:     res.AITiebreak,
		Outcome:        res.Outcome,
		Payout:         res.Payout,
		Balance:        res.Balance,
	}
}

func ToDicePracticeResponse(res model.DicePracticeResult) dto.PracticeResponse {
	return dto.PracticeResponse{
		Hand:     res.Hand,
		Rank:     res.Rank,
		Tiebreak: res.Tiebreak,
		Score:    res.Score,
	}
}
