package spin_history_repo

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/model"
	"kingdom_backend/internal/repository"
)

const (
	table           = "spin_history"
	colID           = "id"
	colPlayerID     = "player_id"
	colTier         = "tier"
	colSymbols      = "symbols"
	colCategory     = "category"
	colMultiplier   = "multiplier"
	colRewardType   = "reward_type"
	colRewardAmount = "reward_amount"
	colCreatedAt    = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinHistoryRepository(dbc *pgxpool.Pool) repository.SpinHistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Save - записывает спин в историю. Символы хранятся в jsonb массивом имен.
func (r *repo) Save(ctx context.Context, rec model.SpinRecord) error {
	symbols, err := encodeSymbols(rec.Symbols)
	if err != nil {
		return err
	}

	var rewardType *string
	var rewardAmount *int64
	if rec.Reward != nil {
		t := string(rec.Reward.Type)
		rewardType, rewardAmount = &t, &rec.Reward.Amount
	}

	query := psql.Insert(table).
		Columns(colID, colPlayerID, colTier, colSymbols, colCategory, colMultiplier,
			colRewardType, colRewardAmount, colCreatedAt).
		Values(rec.ID, rec.PlayerID, rec.TierID, symbols, rec.Category.String(), rec.Multiplier,
			rewardType, rewardAmount, rec.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListByPlayer - последние limit спинов игрока, новые первыми
func (r *repo) ListByPlayer(ctx context.Context, playerID uuid.UUID, limit uint64) ([]model.SpinRecord, error) {
	query := psql.Select(colID, colPlayerID, colTier, colSymbols, colCategory, colMultiplier,
		colRewardType, colRewardAmount, colCreatedAt).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colCreatedAt+" DESC", colID).
		Limit(limit)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.SpinRecord, 0, limit)
	for rows.Next() {
		var (
			rec          model.SpinRecord
			symbols      []byte
			category     string
			rewardType   *string
			rewardAmount *int64
		)
		err = rows.Scan(&rec.ID, &rec.PlayerID, &rec.TierID, &symbols, &category, &rec.Multiplier,
			&rewardType, &rewardAmount, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}

		if rec.Symbols, err = decodeSymbols(symbols); err != nil {
			return nil, fmt.Errorf("spin %s: %w", rec.ID, err)
		}
		if rec.Category, err = engine.ParseCategory(category); err != nil {
			return nil, fmt.Errorf("spin %s: %w", rec.ID, err)
		}
		if rewardType != nil && rewardAmount != nil {
			rec.Reward = &engine.Reward{Type: engine.RewardType(*rewardType), Amount: *rewardAmount}
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

func encodeSymbols(symbols [engine.Reels]engine.Symbol) ([]byte, error) {
	names := make([]string, 0, len(symbols))
	for _, s := range symbols {
		names = append(names, s.String())
	}
	return json.Marshal(names)
}

func decodeSymbols(raw []byte) ([engine.Reels]engine.Symbol, error) {
	var out [engine.Reels]engine.Symbol

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return out, err
	}
	if len(names) != engine.Reels {
		return out, fmt.Errorf("expected %d symbols, got %d", engine.Reels, len(names))
	}

	for i, name := range names {
		s, err := engine.ParseSymbol(name)
		if err != nil {
			return out, err
		}
		out[i] = s
	}
	return out, nil
}
