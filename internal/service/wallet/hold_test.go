package wallet

import (
	"context"
	"testing"

	"campus_market/internal/middleware"
	"campus_market/internal/model"

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

func TestHoldFreezesDeposit(t *testing.T) {
	users := &userRepoStub{balances: map[int]int{1: 1000}}
	rounds := &roundRepoStub{}
	s := &serv{
		userRepo:  users,
		roundRepo: rounds,
		txManager: txManagerStub{},
	}

	ctx := middleware.WithUserID(context.Background(), 1)

	// 5% от 1010 - 50.5, округляется вверх до 51
	res, err := s.Hold(ctx, 1010)
	require.NoError(t, err)

	assert.Equal(t, 1010, res.Amount)
	assert.Equal(t, 51, res.Deposit)
	assert.Equal(t, 949, res.Balance)
	assert.Equal(t, 949, users.balances[1])

	// Залог виден в леджере
	require.Len(t, rounds.rounds, 1)
	assert.Equal(t, model.LedgerEscrow, rounds.rounds[0].Game)
	assert.Equal(t, 51, rounds.rounds[0].Stake)
	assert.Equal(t, 0, rounds.rounds[0].Payout)
	assert.Equal(t, "hold", rounds.rounds[0].Outcome)
}

func TestHoldValidation(t *testing.T) {
	users := &userRepoStub{balances: map[int]int{1: 10}}
	s := &serv{
		userRepo:  users,
		roundRepo: &roundRepoStub{},
		txManager: txManagerStub{},
	}

	ctx := middleware.WithUserID(context.Background(), 1)

	// Неположительная сумма
	_, err := s.Hold(ctx, 0)
	assert.Error(t, err)

	// Залог округляется в ноль
	_, err = s.Hold(ctx, 9)
	assert.Error(t, err)

	// Недостаточно средств под залог
	_, err = s.Hold(ctx, 1000)
	assert.Error(t, err)

	// Нет пользователя в контексте
	_, err = s.Hold(context.Background(), 1000)
	assert.Error(t, err)

	// Баланс не тронут
	assert.Equal(t, 10, users.balances[1])
}
