package round_repo

import (
	"campus_market/internal/model"
	"campus_market/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "game_rounds"
	colID        = "id"
	colUserID    = "user_id"
	colGame      = "game"
	colStake     = "stake"
	colPayout    = "payout"
	colOutcome   = "outcome"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateRound - записывает сыгранный раунд. Возвращает ID записи
func (r *repo) CreateRound(ctx context.Context, round *model.GameRound) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colGame, colStake, colPayout, colOutcome).
		Values(round.UserID, round.Game, round.Stake, round.Payout, round.Outcome).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetRecentRounds - последние раунды пользователя, новые первыми
func (r *repo) GetRecentRounds(ctx context.Context, userID int, limit int) ([]model.GameRound, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colGame, colStake, colPayout, colOutcome, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []model.GameRound
	for rows.Next() {
		var round model.GameRound
		err = rows.Scan(&round.ID, &round.UserID, &round.Game, &round.Stake, &round.Payout, &round.Outcome, &round.CreatedAt)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	return rounds, rows.Err()
}
