package stats

import (
	"campus_market/internal/model"
	"campus_market/internal/repository"
	"campus_market/internal/service"
)

type serv struct {
	statsRepo repository.StatsRepository
}

// NewStatsService Создать сервис статистики по играм
func NewStatsService(statsRepo repository.StatsRepository) service.StatsService {
	return &serv{
		statsRepo: statsRepo,
	}
}

// Snapshot возвращает агрегаты по всем играм
func (s *serv) Snapshot() []model.GameStats {
	return s.statsRepo.Snapshot()
}
