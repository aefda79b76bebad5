package dice

import (
	"context"
	"testing"

	game "campus_market/internal/game/dice"
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

func TestPlayBalanceMath(t *testing.T) {
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

	res, err := s.Play(ctx, model.DicePlay{Stake: 300})
	require.NoError(t, err)

	// Выплата соответствует исходу дуэли
	switch res.Outcome {
	case string(game.OutcomePlayer):
		assert.Equal(t, 600, res.Payout)
	case string(game.OutcomeTie):
		assert.Equal(t, 300, res.Payout)
	case string(game.OutcomeAI):
		assert.Equal(t, 0, res.Payout)
	default:
		t.Fatalf("unexpected outcome %q", res.Outcome)
	}

	// Баланс сходится: списание ставки плюс выплата
	assert.Equal(t, 1000-300+res.Payout, res.Balance)
	assert.Equal(t, res.Balance, users.balances[1])

	// Исход воспроизводим из самих рук
	playerRes, err := game.Evaluate(res.PlayerHand)
	require.NoError(t, err)
	aiRes, err := game.Evaluate(res.AIHand)
	require.NoError(t, err)
	assert.Equal(t, string(game.Compare(playerRes, aiRes)), res.Outcome)

	require.Len(t, rounds.rounds, 1)
	assert.Equal(t, model.GameDice, rounds.rounds[0].Game)
	assert.Equal(t, res.Outcome, rounds.rounds[0].Outcome)
}

func TestPlayValidation(t *testing.T) {
	users := &userRepoStub{balances: map[int]int{1: 100}}
	s := &serv{
		gamesCfg:  gamesCfgStub{},
		userRepo:  users,
		roundRepo: &roundRepoStub{},
		statsRepo: stats_repo.NewStatsRepository(),
		txManager: txManagerStub{},
	}

	ctx := middleware.WithUserID(context.Background(), 1)

	// Ставка вне лимитов
	_, err := s.Play(ctx, model.DicePlay{Stake: 99})
	assert.Error(t, err)

	// Недостаточно средств
	_, err = s.Play(ctx, model.DicePlay{Stake: 500})
	assert.Error(t, err)

	// Нет пользователя в контексте
	_, err = s.Play(context.Background(), model.DicePlay{Stake: 300})
	assert.Error(t, err)
}

func TestPracticeScoresHand(t *testing.T) {
	s := &serv{}

	res, err := s.Practice([]int{2, 2, 2, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, "full_house", res.Rank)
	assert.Equal(t, []int{2, 5}, res.Tiebreak)
	assert.Equal(t, 70, res.Score)

	_, err = s.Practice([]int{1, 2, 3})
	assert.ErrorIs(t, err, game.ErrInvalidHand)
}
