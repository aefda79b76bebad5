package stats_repo

import (
	"sort"
	"sync"

	"campus_market/internal/model"
	"campus_market/internal/repository"
)

// gameState - агрегаты одной игры
type gameState struct {
	rounds      int
	totalStaked int
	totalPaid   int
}

// Репозиторий статистики по играм. Копит суммы ставок и выплат
// с момента старта процесса, отдает наблюдаемый RTP
type StatsRepo struct {
	mtx   sync.RWMutex
	games map[string]*gameState
}

func NewStatsRepository() repository.StatsRepository {
	return &StatsRepo{
		games: make(map[string]*gameState),
	}
}

// Record учитывает раунд игры
func (r *StatsRepo) Record(game string, stake, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.games[game]
	if !ok {
		s = &gameState{}
		r.games[game] = s
	}

	s.rounds++
	s.totalStaked += stake
	s.totalPaid += payout
}

// Snapshot возвращает срез агрегатов по всем играм, отсортированный по имени
func (r *StatsRepo) Snapshot() []model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]model.GameStats, 0, len(r.games))
	for game, s := range r.games {
		rtp := 0.0
		if s.totalStaked > 0 {
			rtp = float64(s.totalPaid) / float64(s.totalStaked) * 100
		}
		out = append(out, model.GameStats{
			Game:        game,
			Rounds:      s.rounds,
			TotalStaked: s.totalStaked,
			TotalPaid:   s.totalPaid,
			RTP:         rtp,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Game < out[j].Game })
	return out
}
