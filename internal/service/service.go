package service

import (
	"campus_market/internal/model"
	"campus_market/internal/pricing"
	"context"
)

type DiceService interface {
	Play(ctx context.Context, req model.DicePlay) (*model.DicePlayResult, error)
	Practice(faces []int) (*model.DicePracticeResult, error)
}

type BingoService interface {
	Start(ctx context.Context, req model.BingoStart) (*model.BingoStartResult, error)
	Call(ctx context.Context) (*model.BingoCallResult, error)
	Mark(ctx context.Context, phrase string) (*model.BingoMarkResult, error)
	Claim(ctx context.Context) (*model.BingoClaimResult, error)
	Practice(marks [5][5]bool) *model.BingoPracticeResult
}

type WheelService interface {
	Spin(ctx context.Context, req model.WheelSpin) (*model.WheelSpinResult, error)
}

type PricingService interface {
	Quote(sellerPrice float64, commissionRate *float64, method string) (*pricing.Breakdown, error)
	SquadFee(amount float64, method string) (*pricing.SquadFee, error)
}

type WalletService interface {
	Deposit(ctx context.Context, amount int) (balance int, err error)
	Withdraw(ctx context.Context, amount int) (balance int, err error)
	Hold(ctx context.Context, amount int) (*model.EscrowHold, error)
	Balance(ctx context.Context) (int, error)
	History(ctx context.Context, limit int) ([]model.GameRound, error)
}

type StatsService interface {
	Snapshot() []model.GameStats
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
