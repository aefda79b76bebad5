package converter

import (
	dto "campus_market/internal/api/dto/wheel"
	"campus_market/internal/game/wheel"
	"campus_market/internal/model"
)

func ToWheelSpin(req dto.SpinRequest) model.WheelSpin {
	return model.WheelSpin{
		Stake: req.Stake,
	}
}

func ToWheelSpinResponse(res model.WheelSpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Index:      res.Index,
		Multiplier: res.Multiplier,
		Win:        res.Win,
		Payout:     res.Payout,
		Balance:    res.Balance,
	}
}

func ToWheelSegmentsResponse(segments [16]wheel.Segment) dto.SegmentsResponse {
	out := make([]dto.Segment, 0, len(segments))
	for i, s := range segments {
		out = append(out, dto.Segment{
			Index:      i,
			Multiplier: s.Multiplier,
		})
	}
	return dto.SegmentsResponse{Segments: out}
}
