package postgres

type migration struct {
	version int
	name    string
	sql     string
}

// Версии только добавляются, примененные миграции не редактируются
var migrations = []migration{
	{1, "player_state", migration001PlayerState},
	{2, "spin_history", migration002SpinHistory},
}

const migration001PlayerState = `
CREATE TABLE IF NOT EXISTS player_state (
    player_id UUID PRIMARY KEY,
    coins BIGINT NOT NULL DEFAULT 0 CHECK (coins >= 0),
    spins INTEGER NOT NULL DEFAULT 0 CHECK (spins >= 0),
    max_spins INTEGER NOT NULL DEFAULT 50 CHECK (max_spins > 0),
    shields INTEGER NOT NULL DEFAULT 0,
    attack_charges INTEGER NOT NULL DEFAULT 0,
    raid_charges INTEGER NOT NULL DEFAULT 0,
    bonus_rounds INTEGER NOT NULL DEFAULT 0,
    attack_multiplier DOUBLE PRECISION NOT NULL DEFAULT 1 CHECK (attack_multiplier > 0),
    total_spins INTEGER NOT NULL DEFAULT 0,
    total_coins_earned BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_player_state_spins ON player_state(spins);
`

const migration002SpinHistory = `
CREATE TABLE IF NOT EXISTS spin_history (
    id UUID PRIMARY KEY,
    player_id UUID NOT NULL REFERENCES player_state(player_id) ON DELETE CASCADE,
    tier VARCHAR(32) NOT NULL,
    symbols JSONB NOT NULL,
    category VARCHAR(16) NOT NULL,
    multiplier INTEGER NOT NULL DEFAULT 0,
    reward_type VARCHAR(16),
    reward_amount BIGINT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_spin_history_player_created ON spin_history(player_id, created_at DESC);
`
