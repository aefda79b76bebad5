package repository

import (
	"campus_market/internal/model"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type RoundRepository interface {
	CreateRound(ctx context.Context, round *model.GameRound) (id int, err error)
	GetRecentRounds(ctx context.Context, userID int, limit int) ([]model.GameRound, error)
}

// BingoSessionRepository хранит активные раунды бинго в памяти процесса
type BingoSessionRepository interface {
	Get(userID int) (*model.BingoSession, bool)
	Save(session *model.BingoSession)
	Delete(userID int)
}

// StatsRepository копит агрегаты по играм в памяти процесса
type StatsRepository interface {
	Record(game string, stake, payout int)
	Snapshot() []model.GameStats
}
