package bingo

import (
	"campus_market/internal/config"
	"campus_market/internal/repository"
	"campus_market/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	gamesCfg    config.GamesConfig
	userRepo    repository.UserRepository
	roundRepo   repository.RoundRepository
	sessionRepo repository.BingoSessionRepository
	statsRepo   repository.StatsRepository
	txManager   trm.Manager
}

// NewBingoService Создать сервис кампусного бинго
func NewBingoService(
	gamesCfg config.GamesConfig,
	userRepo repository.UserRepository,
	roundRepo repository.RoundRepository,
	sessionRepo repository.BingoSessionRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
) service.BingoService {
	return &serv{
		gamesCfg:    gamesCfg,
		userRepo:    userRepo,
		roundRepo:   roundRepo,
		sessionRepo: sessionRepo,
		statsRepo:   statsRepo,
		txManager:   txManager,
	}
}
