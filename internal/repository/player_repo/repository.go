package player_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kingdom_backend/internal/model"
	"kingdom_backend/internal/repository"
)

const (
	table               = "player_state"
	colPlayerID         = "player_id"
	colCoins            = "coins"
	colSpins            = "spins"
	colMaxSpins         = "max_spins"
	colShields          = "shields"
	colAttackCharges    = "attack_charges"
	colRaidCharges      = "raid_charges"
	colBonusRounds      = "bonus_rounds"
	colAttackMultiplier = "attack_multiplier"
	colTotalSpins       = "total_spins"
	colTotalCoinsEarned = "total_coins_earned"
	colCreatedAt        = "created_at"
	colUpdatedAt        = "updated_at"
)

var columns = []string{
	colPlayerID, colCoins, colSpins, colMaxSpins, colShields, colAttackCharges, colRaidCharges,
	colBonusRounds, colAttackMultiplier, colTotalSpins, colTotalCoinsEarned, colCreatedAt, colUpdatedAt,
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPlayerRepository(dbc *pgxpool.Pool) repository.PlayerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn текущая транзакция из контекста или пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// Get - состояние игрока без блокировки
func (r *repo) Get(ctx context.Context, id uuid.UUID) (model.PlayerState, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate - состояние игрока с блокировкой строки до конца транзакции
func (r *repo) GetForUpdate(ctx context.Context, id uuid.UUID) (model.PlayerState, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *repo) get(ctx context.Context, id uuid.UUID, suffix string) (model.PlayerState, error) {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Eq{colPlayerID: id})
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.PlayerState{}, err
	}

	state, err := scanState(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PlayerState{}, fmt.Errorf("%w: %s", repository.ErrPlayerNotFound, id)
		}
		return model.PlayerState{}, err
	}

	return state, nil
}

// Create - вставляет стартовое состояние. Если игрок уже есть, строка не меняется.
// Возвращает то, что лежит в БД.
func (r *repo) Create(ctx context.Context, s model.PlayerState) (model.PlayerState, error) {
	query := psql.Insert(table).
		Columns(columns...).
		Values(s.PlayerID, s.Coins, s.Spins, s.MaxSpins, s.Shields, s.AttackCharges, s.RaidCharges,
			s.BonusRounds, s.AttackMultiplier, s.TotalSpins, s.TotalCoinsEarned, s.CreatedAt, s.UpdatedAt).
		Suffix("ON CONFLICT (" + colPlayerID + ") DO NOTHING")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.PlayerState{}, err
	}

	if _, err = r.conn(ctx).Exec(ctx, sqlStr, args...); err != nil {
		return model.PlayerState{}, err
	}

	return r.Get(ctx, s.PlayerID)
}

// Save - перезаписывает изменяемые поля игрока
func (r *repo) Save(ctx context.Context, s model.PlayerState) error {
	query := psql.Update(table).
		SetMap(map[string]interface{}{
			colCoins:            s.Coins,
			colSpins:            s.Spins,
			colMaxSpins:         s.MaxSpins,
			colShields:          s.Shields,
			colAttackCharges:    s.AttackCharges,
			colRaidCharges:      s.RaidCharges,
			colBonusRounds:      s.BonusRounds,
			colAttackMultiplier: s.AttackMultiplier,
			colTotalSpins:       s.TotalSpins,
			colTotalCoinsEarned: s.TotalCoinsEarned,
			colUpdatedAt:        s.UpdatedAt,
		}).
		Where(sq.Eq{colPlayerID: s.PlayerID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", repository.ErrPlayerNotFound, s.PlayerID)
	}

	return nil
}

// ListForUpdate - пачка игроков по возрастанию ID под FOR UPDATE.
// С SkipLocked занятые строки пропускаются, иначе запрос ждет их освобождения.
func (r *repo) ListForUpdate(ctx context.Context, f repository.PlayerFilter) ([]model.PlayerState, error) {
	sqlStr, args, err := listQuery(f).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := make([]model.PlayerState, 0, f.Limit)
	for rows.Next() {
		s, err := scanState(rows)
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}

	return states, rows.Err()
}

func listQuery(f repository.PlayerFilter) sq.SelectBuilder {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Gt{colPlayerID: f.AfterID}).
		OrderBy(colPlayerID).
		Limit(f.Limit)
	if f.SkipLocked {
		query = query.Suffix("FOR UPDATE SKIP LOCKED")
	} else {
		query = query.Suffix("FOR UPDATE")
	}
	if f.BelowCapOnly {
		query = query.Where(sq.Expr(colSpins + " < " + colMaxSpins))
	}
	return query
}

func scanState(row pgx.Row) (model.PlayerState, error) {
	var s model.PlayerState
	err := row.Scan(&s.PlayerID, &s.Coins, &s.Spins, &s.MaxSpins, &s.Shields, &s.AttackCharges, &s.RaidCharges,
		&s.BonusRounds, &s.AttackMultiplier, &s.TotalSpins, &s.TotalCoinsEarned, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
