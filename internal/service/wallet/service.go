package wallet

import (
	"campus_market/internal/repository"
	"campus_market/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	userRepo  repository.UserRepository
	roundRepo repository.RoundRepository
	txManager trm.Manager
}

// NewWalletService Создать сервис кошелька
func NewWalletService(
	userRepo repository.UserRepository,
	roundRepo repository.RoundRepository,
	txManager trm.Manager,
) service.WalletService {
	return &serv{
		userRepo:  userRepo,
		roundRepo: roundRepo,
		txManager: txManager,
	}
}
