package converter

import (
	dto "campus_market/internal/api/dto/bingo"
	"campus_market/internal/game/bingo"
	"campus_market/internal/model"
)

func ToBingoStart(req dto.StartRequest) model.BingoStart {
	return model.BingoStart{
		Stake: req.Stake,
	}
}

func ToBingoStartResponse(res model.BingoStartResult) dto.StartResponse {
	return dto.StartResponse{
		Card:    toBingoCard(res.Card),
		Stake:   res.Stake,
		Balance: res.Balance,
	}
}

func ToBingoCallResponse(res model.BingoCallResult) dto.CallResponse {
	return dto.CallResponse{
		Phrase:    res.Phrase,
		Called:    res.Called,
		Remaining: res.Remaining,
	}
}

func ToBingoMarkResponse(res model.BingoMarkResult) dto.MarkResponse {
	return dto.MarkResponse{
		Card:    toBingoCard(res.Card),
		Pattern: res.Pattern,
	}
}

func ToBingoPracticeResponse(res model.BingoPracticeResult) dto.PracticeResponse {
	return dto.PracticeResponse{
		Pattern: res.Pattern,
		Points:  res.Points,
	}
}

func ToBingoClaimResponse(res model.BingoClaimResult) dto.ClaimResponse {
	return dto.ClaimResponse{
		Pattern: res.Pattern,
		Payout:  res.Payout,
		Balance: res.Balance,
	}
}

func toBingoCard(card bingo.Card) [5][5]dto.Cell {
	var out [5][5]dto.Cell
	for r := 0; r < bingo.Size; r++ {
		for c := 0; c < bingo.Size; c++ {
			out[r][c] = dto.Cell{
				Phrase:    card[r][c].Phrase,
				Marked:    card[r][c].Marked,
				FreeSpace: card[r][c].FreeSpace,
			}
		}
	}
	return out
}
