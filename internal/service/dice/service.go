package dice

import (
	"campus_market/internal/config"
	"campus_market/internal/repository"
	"campus_market/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	gamesCfg  config.GamesConfig
	userRepo  repository.UserRepository
	roundRepo repository.RoundRepository
	statsRepo repository.StatsRepository
	txManager trm.Manager
}

// NewDiceService Создать сервис дуэли на кубиках
func NewDiceService(
	gamesCfg config.GamesConfig,
	userRepo repository.UserRepository,
	roundRepo repository.RoundRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
) service.DiceService {
	return &serv{
		gamesCfg:  gamesCfg,
		userRepo:  userRepo,
		roundRepo: roundRepo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}
