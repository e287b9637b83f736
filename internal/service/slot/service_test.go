package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/middleware"
	"kingdom_backend/internal/model"
	"kingdom_backend/internal/service"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	serv    *serv
	players *fakePlayers
	history *fakeHistory
	stats   *fakeStats
	tx      *fakeTx
}

func newFixture(t *testing.T, rnd func() float64) *fixture {
	t.Helper()

	eng, err := engine.New(engine.DefaultWeightTable(), engine.DefaultTierTable(), engine.WithRand(rnd))
	if err != nil {
		t.Fatal(err)
	}

	f := &fixture{
		players: newFakePlayers(),
		history: &fakeHistory{},
		stats:   &fakeStats{},
	}
	f.tx = &fakeTx{players: f.players}

	cfg := fakeSlotConfig{starting: model.DefaultStartingResources, stripLength: 5}
	f.serv = NewSlotService(eng, cfg, f.players, f.history, f.stats, f.tx).(*serv)
	f.serv.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) seed(spins int, attackMultiplier float64) uuid.UUID {
	id := uuid.New()
	st := model.NewPlayerState(id, model.DefaultStartingResources, fixedNow)
	st.Spins = spins
	st.AttackMultiplier = attackMultiplier
	f.players.states[id] = st
	return id
}

func TestSpinCoinPair(t *testing.T) {
	f := newFixture(t, symbols(engine.Coin, engine.Coin, engine.Attack))
	id := f.seed(50, 1)
	ctx := middleware.WithPlayerID(context.Background(), id)

	res, err := f.serv.Spin(ctx, model.SlotSpin{TierID: "x2"})
	if err != nil {
		t.Fatal(err)
	}

	if res.Outcome.Category != engine.CategoryCoin || res.Outcome.Multiplier != 1 {
		t.Errorf("outcome = %+v", res.Outcome)
	}
	if res.Reward == nil || *res.Reward != (engine.Reward{Type: engine.RewardCoins, Amount: 240}) {
		t.Fatalf("reward = %+v", res.Reward)
	}
	if res.State.Spins != 47 || res.State.Coins != 10240 || res.State.TotalSpins != 1 {
		t.Errorf("state = %+v", res.State)
	}
	if !res.State.UpdatedAt.Equal(fixedNow) {
		t.Errorf("updated at = %v", res.State.UpdatedAt)
	}
	if f.players.states[id] != res.State {
		t.Error("returned state differs from saved state")
	}

	for i, strip := range res.Strips {
		if len(strip) != 5 {
			t.Errorf("strip %d length = %d, want 5", i, len(strip))
			continue
		}
		if strip[4] != res.Outcome.Symbols[i] {
			t.Errorf("strip %d ends with %s, want %s", i, strip[4], res.Outcome.Symbols[i])
		}
	}

	if len(f.history.records) != 1 {
		t.Fatalf("history = %d records", len(f.history.records))
	}
	rec := f.history.records[0]
	if rec.ID != res.SpinID || rec.PlayerID != id || rec.TierID != "x2" || rec.Category != engine.CategoryCoin {
		t.Errorf("history record = %+v", rec)
	}
	if f.stats.Snapshot().SpinsSpent != 3 {
		t.Errorf("stats = %+v", f.stats.Snapshot())
	}
}

func TestSpinLossHasNoReward(t *testing.T) {
	f := newFixture(t, symbols(engine.Coin, engine.Attack, engine.Raid))
	id := f.seed(50, 1)

	res, err := f.serv.Spin(middleware.WithPlayerID(context.Background(), id), model.SlotSpin{TierID: "x1", StripLength: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome.IsWin || res.Reward != nil {
		t.Errorf("loss produced %+v / %+v", res.Outcome, res.Reward)
	}
	if res.State.Coins != 10000 || res.State.Spins != 49 {
		t.Errorf("state = %+v", res.State)
	}
	if f.history.records[0].Reward != nil {
		t.Error("history reward must be nil for a loss")
	}
	if len(res.Strips[0]) != 1 {
		t.Errorf("strip length = %d", len(res.Strips[0]))
	}
}

func TestSpinRewards(t *testing.T) {
	tests := []struct {
		name       string
		rnd        func() float64
		tier       string
		multiplier float64
		want       engine.Reward
		check      func(model.PlayerState) bool
	}{
		{
			name: "attack uses player multiplier", rnd: symbols(engine.Attack, engine.Attack, engine.Coin),
			tier: "x1", multiplier: 2.5, want: engine.Reward{Type: engine.RewardAttack, Amount: 3},
			check: func(s model.PlayerState) bool { return s.AttackCharges == 3 },
		},
		{
			name: "jackpot", rnd: symbols(engine.Bonus),
			tier: "x1", multiplier: 1, want: engine.Reward{Type: engine.RewardJackpot, Amount: 10000},
			check: func(s model.PlayerState) bool { return s.Coins == 20000 && s.TotalCoinsEarned == 10000 },
		},
		{
			name: "energy triple refills past cap", rnd: symbols(engine.Energy),
			tier: "x5", multiplier: 1, want: engine.Reward{Type: engine.RewardEnergy, Amount: 30},
			check: func(s model.PlayerState) bool { return s.Spins == 70 },
		},
		{
			name: "shield pair", rnd: symbols(engine.Shield, engine.Raid, engine.Shield),
			tier: "x2", multiplier: 1, want: engine.Reward{Type: engine.RewardShield, Amount: 2},
			check: func(s model.PlayerState) bool { return s.Shields == 2 },
		},
		{
			name: "bonus pair gives extra spins as rounds", rnd: symbols(engine.Raid, engine.Bonus, engine.Bonus),
			tier: "x5", multiplier: 1, want: engine.Reward{Type: engine.RewardBonus, Amount: 10},
			check: func(s model.PlayerState) bool { return s.BonusRounds == 10 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.rnd)
			id := f.seed(50, tt.multiplier)

			res, err := f.serv.Spin(middleware.WithPlayerID(context.Background(), id), model.SlotSpin{TierID: tt.tier})
			if err != nil {
				t.Fatal(err)
			}
			if res.Reward == nil || *res.Reward != tt.want {
				t.Fatalf("reward = %+v, want %+v", res.Reward, tt.want)
			}
			if !tt.check(res.State) {
				t.Errorf("state = %+v", res.State)
			}
		})
	}
}

func TestSpinCreatesPlayerOnFirstSpin(t *testing.T) {
	f := newFixture(t, symbols(engine.Coin, engine.Attack, engine.Raid))
	id := uuid.New()

	res, err := f.serv.Spin(middleware.WithPlayerID(context.Background(), id), model.SlotSpin{TierID: "x1"})
	if err != nil {
		t.Fatal(err)
	}
	if f.players.creates != 1 {
		t.Errorf("creates = %d", f.players.creates)
	}
	if res.State.Spins != 49 || res.State.Coins != 10000 || res.State.MaxSpins != 50 {
		t.Errorf("state = %+v", res.State)
	}
}

func TestSpinErrors(t *testing.T) {
	f := newFixture(t, symbols(engine.Coin, engine.Coin, engine.Coin))
	id := f.seed(2, 1)
	ctx := middleware.WithPlayerID(context.Background(), id)

	tests := []struct {
		name string
		ctx  context.Context
		req  model.SlotSpin
		want error
	}{
		{"no player", context.Background(), model.SlotSpin{TierID: "x1"}, service.ErrNoPlayerID},
		{"unknown tier", ctx, model.SlotSpin{TierID: "x3"}, service.ErrUnknownTier},
		{"unknown tier is invalid argument", ctx, model.SlotSpin{TierID: ""}, engine.ErrInvalidArgument},
		{"negative strip", ctx, model.SlotSpin{TierID: "x1", StripLength: -1}, service.ErrInvalidStripLength},
		{"long strip", ctx, model.SlotSpin{TierID: "x1", StripLength: maxStripLength + 1}, service.ErrInvalidStripLength},
		{"not enough spins", ctx, model.SlotSpin{TierID: "x5"}, model.ErrNotEnoughSpins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.serv.Spin(tt.ctx, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if f.players.states[id].Spins != 2 || f.players.saves != 0 {
		t.Errorf("failed spins changed state: %+v, saves %d", f.players.states[id], f.players.saves)
	}
	if len(f.history.records) != 0 || len(f.stats.outcomes) != 0 {
		t.Error("failed spins must not be recorded")
	}
}

func TestSpinRewardErrorIsServerSide(t *testing.T) {
	f := newFixture(t, symbols(engine.Attack, engine.Attack, engine.Coin))
	// Множитель атаки 0 в БД движок не принимает
	id := f.seed(50, 0)

	_, err := f.serv.Spin(middleware.WithPlayerID(context.Background(), id), model.SlotSpin{TierID: "x1"})
	if !errors.Is(err, service.ErrRewardCalculation) {
		t.Fatalf("err = %v, want ErrRewardCalculation", err)
	}
	if errors.Is(err, engine.ErrInvalidArgument) {
		t.Error("reward failure must not look like a client error")
	}

	if st := f.players.states[id]; st.Spins != 50 || st.TotalSpins != 0 {
		t.Errorf("state not rolled back: %+v", st)
	}
	if len(f.history.records) != 0 {
		t.Error("history written for a failed spin")
	}
}

func TestSpinRollsBackWhenHistoryFails(t *testing.T) {
	f := newFixture(t, symbols(engine.Coin, engine.Coin, engine.Coin))
	id := f.seed(50, 1)
	f.history.saveErr = errors.New("disk full")

	_, err := f.serv.Spin(middleware.WithPlayerID(context.Background(), id), model.SlotSpin{TierID: "x1"})
	if err == nil {
		t.Fatal("expected error")
	}

	st := f.players.states[id]
	if st.Spins != 50 || st.Coins != 10000 || st.TotalSpins != 0 {
		t.Errorf("state not rolled back: %+v", st)
	}
	if len(f.stats.outcomes) != 0 {
		t.Error("stats recorded for a rolled back spin")
	}
}

func TestState(t *testing.T) {
	f := newFixture(t, symbols(engine.Coin))
	id := uuid.New()

	st, err := f.serv.State(middleware.WithPlayerID(context.Background(), id))
	if err != nil {
		t.Fatal(err)
	}
	if st.PlayerID != id || st.Spins != 50 || st.Coins != 10000 || st.AttackMultiplier != 1 {
		t.Errorf("state = %+v", st)
	}

	if _, err := f.serv.State(context.Background()); !errors.Is(err, service.ErrNoPlayerID) {
		t.Errorf("err = %v", err)
	}
}

func TestHistory(t *testing.T) {
	f := newFixture(t, symbols(engine.Coin, engine.Attack, engine.Raid))
	id := f.seed(50, 1)
	ctx := middleware.WithPlayerID(context.Background(), id)

	for i := 0; i < 3; i++ {
		if _, err := f.serv.Spin(ctx, model.SlotSpin{TierID: "x1"}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := f.serv.History(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 || f.history.limit != defaultHistoryLimit {
		t.Errorf("records = %d, limit = %d", len(records), f.history.limit)
	}

	if records, _ = f.serv.History(ctx, 2); len(records) != 2 {
		t.Errorf("limit 2 returned %d", len(records))
	}

	for _, limit := range []int{-1, maxHistoryLimit + 1} {
		if _, err := f.serv.History(ctx, limit); !errors.Is(err, service.ErrInvalidLimit) {
			t.Errorf("History(%d) err = %v", limit, err)
		}
	}
}

func TestSymbolsAndTiers(t *testing.T) {
	f := newFixture(t, symbols(engine.Coin))

	infos := f.serv.Symbols()
	if len(infos) != 6 {
		t.Fatalf("symbols = %d", len(infos))
	}
	if infos[0].Symbol != engine.Coin || infos[0].Weight != 30 || infos[0].Probability.String() != "0.3" {
		t.Errorf("coin info = %+v", infos[0])
	}
	if infos[5].Emoji != "🌟" || infos[5].Name != "Bonus" {
		t.Errorf("bonus info = %+v", infos[5])
	}

	tiers := f.serv.Tiers()
	if len(tiers) != 3 || tiers[0].ID != "x1" || tiers[2].ID != "x5" {
		t.Errorf("tiers = %+v", tiers)
	}
}
