package converter

import (
	dto "campus_market/internal/api/dto/stats"
	"campus_market/internal/model"
)

func ToStatsResponse(games []model.GameStats) dto.StatsResponse {
	out := make([]dto.GameStats, len(games))
	for i, g := range games {
		out[i] = dto.GameStats{
			Game:        g.Game,
			Rounds:      g.Rounds,
			TotalStaked: g.TotalStaked,
			TotalPaid:   g.TotalPaid,
			RTP:         g.RTP,
		}
	}
	return dto.StatsResponse{Games: out}
}
