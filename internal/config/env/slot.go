package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"kingdom_backend/internal/config"
	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/model"
)

type slotPath struct {
	Path string `envconfig:"SLOT_CONFIG_PATH" default:"config.yaml"`
}

// Файл целиком, слот лежит в секции slot
type slotFile struct {
	Slot slotYAML `yaml:"slot"`
}

type slotYAML struct {
	Wildcard    string       `yaml:"wildcard"`
	StripLength int          `yaml:"strip_length"`
	Symbols     []symbolYAML `yaml:"symbols"`
	Tiers       []tierYAML   `yaml:"tiers"`
	Starting    *startYAML   `yaml:"starting"`
}

// Символ задается именем или эмодзи
type symbolYAML struct {
	Symbol string `yaml:"symbol"`
	Weight int    `yaml:"weight"`
}

type tierYAML struct {
	ID         string `yaml:"id"`
	SpinCost   int    `yaml:"spin_cost"`
	BetAmount  int    `yaml:"bet_amount"`
	Bonus      string `yaml:"bonus"`
	ExtraSpins int    `yaml:"extra_spins"`
}

type startYAML struct {
	Coins            int64   `yaml:"coins"`
	Spins            int     `yaml:"spins"`
	MaxSpins         int     `yaml:"max_spins"`
	AttackMultiplier float64 `yaml:"attack_multiplier"`
}

type slotConfig struct {
	weights     engine.WeightTable
	tiers       engine.TierTable
	starting    model.StartingResources
	stripLength int
}

// NewSlotConfig читает таблицы слота из файла SLOT_CONFIG_PATH.
// Если файла нет, берутся стандартные таблицы.
func NewSlotConfig() (config.SlotConfig, error) {
	var p slotPath
	if err := envconfig.Process("", &p); err != nil {
		return nil, fmt.Errorf("slot config: %w", err)
	}

	data, err := os.ReadFile(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", p.Path).Warn("slot config not found, using default tables")
		return defaultSlotConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot config: %w", err)
	}

	return NewSlotConfigFromYAML(data)
}

// NewSlotConfigFromYAML разбирает YAML. Пустые секции заменяются стандартными значениями.
func NewSlotConfigFromYAML(data []byte) (config.SlotConfig, error) {
	var file slotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse slot config: %w", err)
	}
	raw := file.Slot
	cfg := defaultSlotConfig()

	if len(raw.Symbols) > 0 {
		weights, err := parseWeights(raw.Symbols, raw.Wildcard)
		if err != nil {
			return nil, err
		}
		cfg.weights = weights
	}

	if len(raw.Tiers) > 0 {
		tiers, err := parseTiers(raw.Tiers)
		if err != nil {
			return nil, err
		}
		cfg.tiers = tiers
	}

	if raw.Starting != nil {
		st := model.StartingResources{
			Coins:            raw.Starting.Coins,
			Spins:            raw.Starting.Spins,
			MaxSpins:         raw.Starting.MaxSpins,
			AttackMultiplier: raw.Starting.AttackMultiplier,
		}
		if st.Coins < 0 || st.Spins < 0 || st.MaxSpins <= 0 || st.AttackMultiplier <= 0 {
			return nil, fmt.Errorf("invalid starting resources %+v", st)
		}
		cfg.starting = st
	}

	if raw.StripLength < 0 {
		return nil, fmt.Errorf("strip_length must not be negative, got %d", raw.StripLength)
	}
	if raw.StripLength > 0 {
		cfg.stripLength = raw.StripLength
	}

	return cfg, nil
}

func parseWeights(symbols []symbolYAML, wildcard string) (engine.WeightTable, error) {
	entries := make([]engine.SymbolWeight, 0, len(symbols))
	for _, s := range symbols {
		sym, err := engine.ParseSymbol(s.Symbol)
		if err != nil {
			return engine.WeightTable{}, err
		}
		entries = append(entries, engine.SymbolWeight{Symbol: sym, Weight: s.Weight})
	}

	wild := engine.Bonus
	if wildcard != "" {
		w, err := engine.ParseSymbol(wildcard)
		if err != nil {
			return engine.WeightTable{}, fmt.Errorf("wildcard: %w", err)
		}
		wild = w
	}

	return engine.NewWeightTable(entries, wild)
}

func parseTiers(raw []tierYAML) (engine.TierTable, error) {
	tiers := make([]engine.BetTier, 0, len(raw))
	for _, t := range raw {
		bonus := decimal.Zero
		if t.Bonus != "" {
			b, err := decimal.NewFromString(t.Bonus)
			if err != nil {
				return engine.TierTable{}, fmt.Errorf("tier %s bonus: %w", t.ID, err)
			}
			bonus = b
		}
		tiers = append(tiers, engine.BetTier{
			ID:            t.ID,
			SpinCost:      t.SpinCost,
			BetAmount:     t.BetAmount,
			BonusFraction: bonus,
			ExtraSpins:    t.ExtraSpins,
		})
	}

	return engine.NewTierTable(tiers)
}

func defaultSlotConfig() *slotConfig {
	return &slotConfig{
		weights:     engine.DefaultWeightTable(),
		tiers:       engine.DefaultTierTable(),
		starting:    model.DefaultStartingResources,
		stripLength: engine.DefaultStripLength,
	}
}

func (c *slotConfig) Weights() engine.WeightTable {
	return c.weights
}

func (c *slotConfig) Tiers() engine.TierTable {
	return c.tiers
}

func (c *slotConfig) StartingResources() model.StartingResources {
	return c.starting
}

func (c *slotConfig) DefaultStripLength() int {
	return c.stripLength
}
