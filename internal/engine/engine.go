// Package engine считает результат спина: взвешенный выбор символов, оценку тройки и награду.
// Движок не хранит изменяемого состояния и безопасен для конкурентного использования.
package engine

import (
	"fmt"
	"math/rand/v2"
)

// Reels количество барабанов
const Reels = 3

// DefaultStripLength длина косметической ленты барабана для анимации
const DefaultStripLength = 20

// Engine движок наград поверх таблицы весов и таблицы тиров
type Engine struct {
	weights  WeightTable
	tiers    TierTable
	fallback Symbol
	rnd      func() float64
}

type Option func(*Engine)

// WithRand подменяет источник равномерных чисел в [0, 1). Функция должна быть безопасна
// для конкурентного вызова, если движок используется из нескольких горутин.
func WithRand(rnd func() float64) Option {
	return func(e *Engine) {
		if rnd != nil {
			e.rnd = rnd
		}
	}
}

func New(weights WeightTable, tiers TierTable, opts ...Option) (*Engine, error) {
	if weights.Total() <= 0 {
		return nil, fmt.Errorf("%w: weight table is not initialized", ErrInvalidArgument)
	}
	if len(tiers.tiers) == 0 {
		return nil, fmt.Errorf("%w: tier table is not initialized", ErrInvalidArgument)
	}

	e := &Engine{
		weights:  weights,
		tiers:    tiers,
		fallback: heaviest(weights),
		rnd:      rand.Float64,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Default движок на канонических таблицах
func Default(opts ...Option) *Engine {
	e, err := New(DefaultWeightTable(), DefaultTierTable(), opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) Weights() WeightTable {
	return e.weights
}

func (e *Engine) Tiers() TierTable {
	return e.tiers
}

// DrawSymbol взвешенный выбор одного символа.
// Берем r из [0, total), идем по таблице в фиксированном порядке и вычитаем веса;
// первый символ, на котором r <= 0, и выпал.
func (e *Engine) DrawSymbol() Symbol {
	r := e.rnd() * float64(e.weights.total)
	for _, w := range e.weights.entries {
		if w.Weight == 0 {
			continue
		}
		r -= float64(w.Weight)
		if r <= 0 {
			return w.Symbol
		}
	}
	// Недостижимо при корректной арифметике
	return e.fallback
}

// Spin три независимых выбора и оценка тройки
func (e *Engine) Spin() Outcome {
	var symbols [Reels]Symbol
	for i := range symbols {
		symbols[i] = e.DrawSymbol()
	}
	return Evaluate(symbols, e.weights.wildcard)
}

// Evaluate оценка тройки с вайлдом этого движка
func (e *Engine) Evaluate(symbols [Reels]Symbol) Outcome {
	return Evaluate(symbols, e.weights.wildcard)
}

// ReelStrip лента для анимации барабана: length-1 случайных символов и в конце настоящий.
// На результат спина не влияет.
func (e *Engine) ReelStrip(final Symbol, length int) ([]Symbol, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: strip length %d", ErrInvalidArgument, length)
	}
	if !final.Valid() {
		return nil, fmt.Errorf("%w: symbol %d", ErrInvalidArgument, uint8(final))
	}

	strip := make([]Symbol, 0, length)
	for i := 0; i < length-1; i++ {
		strip = append(strip, e.DrawSymbol())
	}
	return append(strip, final), nil
}

// heaviest символ с максимальным весом, при равенстве первый по порядку
func heaviest(t WeightTable) Symbol {
	best := t.entries[0]
	for _, e := range t.entries[1:] {
		if e.Weight > best.Weight {
			best = e
		}
	}
	return best.Symbol
}
