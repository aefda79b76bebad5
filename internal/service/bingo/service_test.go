package bingo

import (
	"context"
	"testing"

	game "campus_market/internal/game/bingo"
	"campus_market/internal/middleware"
	"campus_market/internal/model"
	"campus_market/internal/repository/bingo_session_repo"
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

func (gamesCfgStub) MinStake() int { return 100 }
func (gamesCfgStub) MaxStake() int { return 50000 }

// Лимит открытий покрывает весь пул: тесты ниже ждут конкретную фразу
// и не должны упираться в конец окна
func (gamesCfgStub) MaxBingoCalls() int { return game.PoolSize() }

func newTestService(balances map[int]int) (*serv, *userRepoStub, *roundRepoStub) {
	users := &userRepoStub{balances: balances}
	rounds := &roundRepoStub{}
	s := &serv{
		gamesCfg:    gamesCfgStub{},
		userRepo:    users,
		roundRepo:   rounds,
		sessionRepo: bingo_session_repo.NewBingoSessionRepository(),
		statsRepo:   stats_repo.NewStatsRepository(),
		txManager:   txManagerStub{},
	}
	return s, users, rounds
}

func userCtx(id int) context.Context {
	return middleware.WithUserID(context.Background(), id)
}

func TestStartDebitsStake(t *testing.T) {
	s, users, _ := newTestService(map[int]int{1: 1000})
	ctx := userCtx(1)

	res, err := s.Start(ctx, model.BingoStart{Stake: 400})
	require.NoError(t, err)

	assert.Equal(t, 600, res.Balance)
	assert.Equal(t, 600, users.balances[1])
	assert.True(t, res.Card[2][2].FreeSpace)

	// Второй раунд при открытом первом запрещен
	_, err = s.Start(ctx, model.BingoStart{Stake: 400})
	assert.Error(t, err)
}

func TestStartValidation(t *testing.T) {
	s, _, _ := newTestService(map[int]int{1: 1000})
	ctx := userCtx(1)

	// Ставка вне лимитов
	_, err := s.Start(ctx, model.BingoStart{Stake: 50})
	assert.Error(t, err)

	// Недостаточно средств
	_, err = s.Start(ctx, model.BingoStart{Stake: 5000})
	assert.Error(t, err)

	// Нет пользователя в контексте
	_, err = s.Start(context.Background(), model.BingoStart{Stake: 400})
	assert.Error(t, err)
}

func TestCallAndMarkFlow(t *testing.T) {
	s, _, _ := newTestService(map[int]int{1: 1000})
	ctx := userCtx(1)

	start, err := s.Start(ctx, model.BingoStart{Stake: 400})
	require.NoError(t, err)

	// Отметка до открытия фразы запрещена
	phrase := start.Card[0][0].Phrase
	_, err = s.Mark(ctx, phrase)
	assert.Error(t, err)

	// Открываем фразы, пока не выпадет нужная, и отмечаем
	for {
		call, err := s.Call(ctx)
		require.NoError(t, err)
		if call.Phrase == phrase {
			break
		}
	}

	res, err := s.Mark(ctx, phrase)
	require.NoError(t, err)
	assert.True(t, res.Card[0][0].Marked)

	// Повторная отметка той же клетки запрещена
	_, err = s.Mark(ctx, phrase)
	assert.Error(t, err)
}

func TestClaimPaysDetectedPattern(t *testing.T) {
	s, users, rounds := newTestService(map[int]int{1: 1000})
	ctx := userCtx(1)

	_, err := s.Start(ctx, model.BingoStart{Stake: 400})
	require.NoError(t, err)

	// Дорисовываем сессии полную карточку - фулл-хаус
	session, ok := s.sessionRepo.Get(1)
	require.True(t, ok)
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			session.Card[r][c].Marked = true
		}
	}
	s.sessionRepo.Save(session)

	res, err := s.Claim(ctx)
	require.NoError(t, err)

	assert.Equal(t, string(game.PatternFullHouse), res.Pattern)
	assert.Equal(t, 200, res.Payout) // 400 * 0.50
	assert.Equal(t, 800, res.Balance)
	assert.Equal(t, 800, users.balances[1])

	require.Len(t, rounds.rounds, 1)
	assert.Equal(t, model.GameBingo, rounds.rounds[0].Game)
	assert.Equal(t, 400, rounds.rounds[0].Stake)

	// Сессия закрыта
	_, ok = s.sessionRepo.Get(1)
	assert.False(t, ok)
}

func TestPracticeScoresMarks(t *testing.T) {
	s, _, _ := newTestService(nil)

	var marks [5][5]bool

	// Пустая расстановка - только бесплатный центр
	res := s.Practice(marks)
	assert.Equal(t, string(game.PatternNone), res.Pattern)
	assert.Equal(t, 0, res.Points)

	// Четыре угла
	marks[0][0], marks[0][4], marks[4][0], marks[4][4] = true, true, true, true
	res = s.Practice(marks)
	assert.Equal(t, string(game.PatternFourCorners), res.Pattern)
	assert.Equal(t, 30, res.Points)

	// Диагональ проходит через бесплатный центр
	var diag [5][5]bool
	diag[0][0], diag[1][1], diag[3][3], diag[4][4] = true, true, true, true
	res = s.Practice(diag)
	assert.Equal(t, string(game.PatternLine), res.Pattern)
	assert.Equal(t, 20, res.Points)

	// Полная карточка
	var full [5][5]bool
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			full[r][c] = true
		}
	}
	res = s.Practice(full)
	assert.Equal(t, string(game.PatternFullHouse), res.Pattern)
	assert.Equal(t, 50, res.Points)
}

func TestClaimWithoutPatternLosesStake(t *testing.T) {
	s, users, rounds := newTestService(map[int]int{1: 1000})
	ctx := userCtx(1)

	_, err := s.Start(ctx, model.BingoStart{Stake: 400})
	require.NoError(t, err)

	res, err := s.Claim(ctx)
	require.NoError(t, err)

	assert.Equal(t, string(game.PatternNone), res.Pattern)
	assert.Equal(t, 0, res.Payout)
	assert.Equal(t, 600, users.balances[1])

	require.Len(t, rounds.rounds, 1)
	assert.Equal(t, "lose", rounds.rounds[0].Outcome)
}
