package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SymbolWeight вес символа в таблице
type SymbolWeight struct {
	Symbol Symbol
	Weight int
}

// CanonicalWeights основная таблица весов (сумма 100, вес = процент)
var CanonicalWeights = []SymbolWeight{
	{Symbol: Coin, Weight: 30},
	{Symbol: Attack, Weight: 20},
	{Symbol: Raid, Weight: 15},
	{Symbol: Shield, Weight: 15},
	{Symbol: Energy, Weight: 15},
	{Symbol: Bonus, Weight: 5},
}

// EmojiWeights таблица эмодзи-варианта: щит чаще, атака реже
var EmojiWeights = []SymbolWeight{
	{Symbol: Coin, Weight: 30},
	{Symbol: Attack, Weight: 15},
	{Symbol: Raid, Weight: 15},
	{Symbol: Shield, Weight: 20},
	{Symbol: Energy, Weight: 15},
	{Symbol: Bonus, Weight: 5},
}

// WeightTable упорядоченная таблица весов. Порядок записей задает порядок обхода при выборе символа.
type WeightTable struct {
	entries  []SymbolWeight
	total    int
	wildcard Symbol
}

// NewWeightTable проверяет таблицу и возвращает ее копию
func NewWeightTable(entries []SymbolWeight, wildcard Symbol) (WeightTable, error) {
	if len(entries) == 0 {
		return WeightTable{}, fmt.Errorf("%w: empty weight table", ErrInvalidArgument)
	}

	seen := make(map[Symbol]bool, len(entries))
	total := 0
	wildcardWeight := -1
	for _, e := range entries {
		if !e.Symbol.Valid() {
			return WeightTable{}, fmt.Errorf("%w: unknown symbol %d in weight table", ErrInvalidArgument, uint8(e.Symbol))
		}
		if seen[e.Symbol] {
			return WeightTable{}, fmt.Errorf("%w: duplicate symbol %s in weight table", ErrInvalidArgument, e.Symbol)
		}
		if e.Weight < 0 {
			return WeightTable{}, fmt.Errorf("%w: negative weight %d for %s", ErrInvalidArgument, e.Weight, e.Symbol)
		}
		seen[e.Symbol] = true
		total += e.Weight
		if e.Symbol == wildcard {
			wildcardWeight = e.Weight
		}
	}

	if total <= 0 {
		return WeightTable{}, fmt.Errorf("%w: weight table total must be positive", ErrInvalidArgument)
	}
	if wildcardWeight <= 0 {
		return WeightTable{}, fmt.Errorf("%w: wildcard %s must be in the table with positive weight", ErrInvalidArgument, wildcard)
	}

	cp := make([]SymbolWeight, len(entries))
	copy(cp, entries)

	return WeightTable{entries: cp, total: total, wildcard: wildcard}, nil
}

// DefaultWeightTable каноническая таблица с вайлдом Bonus
func DefaultWeightTable() WeightTable {
	return mustWeightTable(CanonicalWeights, Bonus)
}

func mustWeightTable(entries []SymbolWeight, wildcard Symbol) WeightTable {
	t, err := NewWeightTable(entries, wildcard)
	if err != nil {
		panic(err)
	}
	return t
}

func (t WeightTable) Total() int {
	return t.total
}

func (t WeightTable) Wildcard() Symbol {
	return t.wildcard
}

// Entries возвращает копию записей в порядке обхода
func (t WeightTable) Entries() []SymbolWeight {
	cp := make([]SymbolWeight, len(t.entries))
	copy(cp, t.entries)
	return cp
}

// Weight вес символа, 0 если символа нет в таблице
func (t WeightTable) Weight(s Symbol) int {
	for _, e := range t.entries {
		if e.Symbol == s {
			return e.Weight
		}
	}
	return 0
}

// Probability точная вероятность выпадения символа на одном барабане
func (t WeightTable) Probability(s Symbol) decimal.Decimal {
	if t.total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(t.Weight(s))).Div(decimal.NewFromInt(int64(t.total)))
}
