package engine

import (
	"fmt"
	"strings"
)

// Symbol символ барабана
type Symbol uint8

const (
	Coin Symbol = iota
	Attack
	Raid
	Shield
	Energy
	// Bonus самый редкий символ, он же вайлд (🌟)
	Bonus
)

// AllSymbols фиксированный порядок обхода символов
var AllSymbols = [...]Symbol{Coin, Attack, Raid, Shield, Energy, Bonus}

type symbolInfo struct {
	name    string
	display string
	emoji   string
	color   string
}

var symbolInfos = [...]symbolInfo{
	Coin:   {name: "coin", display: "Coins", emoji: "💰", color: "#FFD700"},
	Attack: {name: "attack", display: "Attack", emoji: "⚔️", color: "#EF4444"},
	Raid:   {name: "raid", display: "Raid", emoji: "🎯", color: "#8B5CF6"},
	Shield: {name: "shield", display: "Shield", emoji: "🛡️", color: "#3B82F6"},
	Energy: {name: "energy", display: "Energy", emoji: "⚡", color: "#F59E0B"},
	Bonus:  {name: "bonus", display: "Bonus", emoji: "🌟", color: "#EC4899"},
}

// Алиасы, которые встречаются в старых таблицах
var symbolAliases = map[string]Symbol{
	"wildcard": Bonus,
	"🪙":        Coin,
	"⭐":        Bonus,
}

func (s Symbol) Valid() bool {
	return int(s) < len(symbolInfos)
}

func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("symbol(%d)", uint8(s))
	}
	return symbolInfos[s].name
}

// DisplayName название для клиента
func (s Symbol) DisplayName() string {
	if !s.Valid() {
		return ""
	}
	return symbolInfos[s].display
}

func (s Symbol) Emoji() string {
	if !s.Valid() {
		return ""
	}
	return symbolInfos[s].emoji
}

func (s Symbol) Color() string {
	if !s.Valid() {
		return ""
	}
	return symbolInfos[s].color
}

// ParseSymbol принимает имя символа ("coin"), эмодзи ("💰") или алиас ("wildcard")
func ParseSymbol(raw string) (Symbol, error) {
	key := strings.TrimSpace(raw)
	for _, s := range AllSymbols {
		if strings.EqualFold(key, symbolInfos[s].name) || key == symbolInfos[s].emoji {
			return s, nil
		}
	}
	if s, ok := symbolAliases[strings.ToLower(key)]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: unknown symbol %q", ErrInvalidArgument, raw)
}

func (s Symbol) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: symbol %d", ErrInvalidArgument, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
