package engine

import "fmt"

// Category категория выигрыша
type Category uint8

const (
	CategoryNone Category = iota
	CategoryCoin
	CategoryAttack
	CategoryRaid
	CategoryShield
	CategoryEnergy
	CategoryBonus
	CategoryJackpot
)

const (
	// Множители совпадений
	pairMultiplier    = 1
	tripleMultiplier  = 3
	jackpotMultiplier = 10
)

var categoryNames = [...]string{
	CategoryNone:    "none",
	CategoryCoin:    "coin",
	CategoryAttack:  "attack",
	CategoryRaid:    "raid",
	CategoryShield:  "shield",
	CategoryEnergy:  "energy",
	CategoryBonus:   "bonus",
	CategoryJackpot: "jackpot",
}

func (c Category) String() string {
	if int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory обратное к String, нужно при чтении истории из БД
func ParseCategory(raw string) (Category, error) {
	for i, name := range categoryNames {
		if name == raw {
			return Category(i), nil
		}
	}
	return CategoryNone, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, raw)
}

func categoryOf(s Symbol) Category {
	switch s {
	case Coin:
		return CategoryCoin
	case Attack:
		return CategoryAttack
	case Raid:
		return CategoryRaid
	case Shield:
		return CategoryShield
	case Energy:
		return CategoryEnergy
	case Bonus:
		return CategoryBonus
	}
	return CategoryNone
}

// Outcome результат одного спина: три символа по порядку барабанов и вычисленный выигрыш
type Outcome struct {
	Symbols    [3]Symbol
	IsWin      bool
	Category   Category
	Multiplier int
}

// Evaluate оценивает тройку символов. Порядок символов на результат не влияет.
// Тройка с невалидным символом считается проигрышем.
//
//   - три одинаковых: вайлд -> jackpot x10, иначе категория символа x3
//   - два одинаковых (на любых позициях): категория повторенного символа x1
//   - все разные: проигрыш
func Evaluate(symbols [3]Symbol, wildcard Symbol) Outcome {
	a, b, c := symbols[0], symbols[1], symbols[2]
	out := Outcome{Symbols: symbols}
	if !a.Valid() || !b.Valid() || !c.Valid() {
		return out
	}

	if a == b && b == c {
		out.IsWin = true
		if a == wildcard {
			out.Category = CategoryJackpot
			out.Multiplier = jackpotMultiplier
		} else {
			out.Category = categoryOf(a)
			out.Multiplier = tripleMultiplier
		}
		return out
	}

	var repeated Symbol
	switch {
	case a == b, a == c:
		repeated = a
	case b == c:
		repeated = b
	default:
		return out
	}

	out.IsWin = true
	out.Category = categoryOf(repeated)
	out.Multiplier = pairMultiplier
	return out
}

// validate проверяет, что категория и множитель согласованы с IsWin
func (o Outcome) validate() error {
	if !o.IsWin {
		if o.Category != CategoryNone || o.Multiplier != 0 {
			return fmt.Errorf("%w: losing outcome with category %s x%d", ErrInvalidArgument, o.Category, o.Multiplier)
		}
		return nil
	}

	switch o.Category {
	case CategoryNone:
		return fmt.Errorf("%w: winning outcome without category", ErrInvalidArgument)
	case CategoryJackpot:
		if o.Multiplier != jackpotMultiplier {
			return fmt.Errorf("%w: jackpot with multiplier %d", ErrInvalidArgument, o.Multiplier)
		}
	case CategoryCoin, CategoryAttack, CategoryRaid, CategoryShield, CategoryEnergy, CategoryBonus:
		if o.Multiplier != pairMultiplier && o.Multiplier != tripleMultiplier {
			return fmt.Errorf("%w: %s with multiplier %d", ErrInvalidArgument, o.Category, o.Multiplier)
		}
	default:
		return fmt.Errorf("%w: unknown category %s", ErrInvalidArgument, o.Category)
	}
	return nil
}
