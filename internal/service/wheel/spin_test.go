package wheel

import (
	"context"
	"testing"

	game "campus_market/internal/game/wheel"
	"campus_market/internal/middleware"
	"campus_market/internal/model"
	"campus_market/internal/repository/stats_repo"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Заглушки репозиториев для тестов сервиса

type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	balances map[int]int
}

func (s *userRepoStub) CreateUser(_ context.Context, _ *model.User) (int, error) { return 0, nil }
func (s *userRepoStub) GetUserByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, nil
}
func (s *userRepoStub) GetBalance(_ context.Context, id int) (int, error) {
	return s.balances[id], nil
}
func (s *userRepoStub) UpdateBalance(_ context.Context, id int, amount int) error {
	s.balances[id] = amount
	return nil
}

type roundRepoStub struct {
	rounds []model.GameRound
}

func (s *roundRepoStub) CreateRound(_ context.Context, round *model.GameRound) (int, error) {
	s.rounds = append(s.rounds, *round)
	return len(s.rounds), nil
}

func (s *roundRepoStub) GetRecentRounds(_ context.Context, _ int, _ int) ([]model.GameRound, error) {
	return s.rounds, nil
}

type gamesCfgStub struct{}

func (gamesCfgStub) MinStake() int      { return 100 }
func (gamesCfgStub) MaxStake() int      { return 50000 }
func (gamesCfgStub) MaxBingoCalls() int { return 25 }

func TestSpinBalanceMath(t *testing.T) {
	users := &userRepoStub{balances: map[int]int{1: 1000}}
	rounds := &roundRepoStub{}
	s := &serv{
		gamesCfg:  gamesCfgStub{},
		userRepo:  users,
		roundRepo: rounds,
		statsRepo: stats_repo.NewStatsRepository(),
		txManager: txManagerStub{},
	}

	ctx := middleware.WithUserID(context.Background(), 1)

	res, err := s.Spin(ctx, model.WheelSpin{Stake: 500})
	require.NoError(t, err)

	// Баланс сходится: 1000 - 500 + выплата
	assert.Equal(t, 1000-500+res.Payout, res.Balance)
	assert.Equal(t, res.Balance, users.balances[1])

	// Выплата - ставка на множитель выпавшего сегмента
	seg := game.Segments()[res.Index]
	assert.Equal(t, seg.Multiplier, res.Multiplier)
	assert.Equal(t, 500*seg.Multiplier, res.Payout)
	assert.Equal(t, game.IsWin(seg.Multiplier), res.Win)

	// Раунд записан
	require.Len(t, rounds.rounds, 1)
	assert.Equal(t, model.GameWheel, rounds.rounds[0].Game)
	assert.Equal(t, 500, rounds.rounds[0].Stake)
	assert.Equal(t, res.Payout, rounds.rounds[0].Payout)
}

func TestSpinValidation(t *testing.T) {
	users := &userRepoStub{balances: map[int]int{1: 50}}
	s := &serv{
		gamesCfg:  gamesCfgStub{},
		userRepo:  users,
		roundRepo: &roundRepoStub{},
		statsRepo: stats_repo.NewStatsRepository(),
		txManager: txManagerStub{},
	}

	ctx := middleware.WithUserID(context.Background(), 1)

	// Ставка вне лимитов
	_, err := s.Spin(ctx, model.WheelSpin{Stake: 10})
	assert.Error(t, err)

	// Недостаточно средств
	_, err = s.Spin(ctx, model.WheelSpin{Stake: 500})
	assert.Error(t, err)

	// Нет пользователя в контексте
	_, err = s.Spin(context.Background(), model.WheelSpin{Stake: 500})
	assert.Error(t, err)
}
