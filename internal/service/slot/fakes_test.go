package slot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"

	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/model"
	"kingdom_backend/internal/repository"
)

type fakeSlotConfig struct {
	starting    model.StartingResources
	stripLength int
}

func (c fakeSlotConfig) Weights() engine.WeightTable                { return engine.DefaultWeightTable() }
func (c fakeSlotConfig) Tiers() engine.TierTable                    { return engine.DefaultTierTable() }
func (c fakeSlotConfig) StartingResources() model.StartingResources { return c.starting }
func (c fakeSlotConfig) DefaultStripLength() int                    { return c.stripLength }

type fakePlayers struct {
	mu      sync.Mutex
	states  map[uuid.UUID]model.PlayerState
	saves   int
	creates int
}

func newFakePlayers() *fakePlayers {
	return &fakePlayers{states: make(map[uuid.UUID]model.PlayerState)}
}

func (f *fakePlayers) Get(_ context.Context, id uuid.UUID) (model.PlayerState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.states[id]
	if !ok {
		return model.PlayerState{}, repository.ErrPlayerNotFound
	}
	return s, nil
}

func (f *fakePlayers) GetForUpdate(ctx context.Context, id uuid.UUID) (model.PlayerState, error) {
	return f.Get(ctx, id)
}

func (f *fakePlayers) Create(ctx context.Context, s model.PlayerState) (model.PlayerState, error) {
	f.mu.Lock()
	if _, ok := f.states[s.PlayerID]; !ok {
		f.states[s.PlayerID] = s
		f.creates++
	}
	f.mu.Unlock()
	return f.Get(ctx, s.PlayerID)
}

func (f *fakePlayers) Save(_ context.Context, s model.PlayerState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.states[s.PlayerID]; !ok {
		return repository.ErrPlayerNotFound
	}
	f.states[s.PlayerID] = s
	f.saves++
	return nil
}

func (f *fakePlayers) ListForUpdate(context.Context, repository.PlayerFilter) ([]model.PlayerState, error) {
	return nil, errors.New("not used")
}

func (f *fakePlayers) snapshot() map[uuid.UUID]model.PlayerState {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make(map[uuid.UUID]model.PlayerState, len(f.states))
	for k, v := range f.states {
		cp[k] = v
	}
	return cp
}

func (f *fakePlayers) restore(states map[uuid.UUID]model.PlayerState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = states
}

type fakeHistory struct {
	mu      sync.Mutex
	records []model.SpinRecord
	saveErr error
	limit   uint64
}

func (f *fakeHistory) Save(_ context.Context, rec model.SpinRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeHistory) ListByPlayer(_ context.Context, id uuid.UUID, limit uint64) ([]model.SpinRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limit = limit

	var out []model.SpinRecord
	for i := len(f.records) - 1; i >= 0 && uint64(len(out)) < limit; i-- {
		if f.records[i].PlayerID == id {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

type fakeStats struct {
	mu       sync.Mutex
	outcomes []engine.Outcome
	spent    int
}

func (f *fakeStats) Record(o engine.Outcome, _ *engine.Reward, cost int, _ time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, o)
	f.spent += cost
}

func (f *fakeStats) Snapshot() model.SlotStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return model.SlotStats{TotalSpins: len(f.outcomes), SpinsSpent: f.spent}
}

// fakeTx откатывает состояние игроков, если fn вернула ошибку
type fakeTx struct {
	players *fakePlayers
	calls   int
}

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	snap := f.players.snapshot()
	if err := fn(ctx); err != nil {
		f.players.restore(snap)
		return err
	}
	return nil
}

func (f *fakeTx) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return f.Do(ctx, fn)
}

// cycle бесконечно повторяет значения по кругу
func cycle(values ...float64) func() float64 {
	var (
		mu sync.Mutex
		i  int
	)
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		v := values[i%len(values)]
		i++
		return v
	}
}

// Точки попадания в символы канонической таблицы (веса 30/20/15/15/15/5)
var point = map[engine.Symbol]float64{
	engine.Coin:   0.10,
	engine.Attack: 0.40,
	engine.Raid:   0.60,
	engine.Shield: 0.75,
	engine.Energy: 0.90,
	engine.Bonus:  0.97,
}

func symbols(ss ...engine.Symbol) func() float64 {
	values := make([]float64, len(ss))
	for i, s := range ss {
		values[i] = point[s]
	}
	return cycle(values...)
}
