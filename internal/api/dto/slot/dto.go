package slot

import "time"

type SpinRequest struct {
	Tier        string `json:"tier"`                   // ID тира: x1, x2, x5
	StripLength int    `json:"strip_length,omitempty"` // Длина ленты анимации, 0 - по умолчанию
}

type SpinResponse struct {
	SpinID     string        `json:"spin_id"`
	Tier       string        `json:"tier"`
	Symbols    [3]string     `json:"symbols"`    // Выпавшие символы
	IsWin      bool          `json:"is_win"`     // Есть ли выигрыш
	Category   string        `json:"category"`   // Категория выигрыша или none
	Multiplier int           `json:"multiplier"` // 0, 1, 3 или 10
	Reward     *Reward       `json:"reward"`     // null при проигрыше
	Strips     [3][]string   `json:"strips"`     // Ленты барабанов, последний символ - выпавший
	State      StateResponse `json:"state"`      // Ресурсы после спина
}

type Reward struct {
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
}

type StateResponse struct {
	PlayerID         string    `json:"player_id"`
	Coins            int64     `json:"coins"`
	Spins            int       `json:"spins"`
	MaxSpins         int       `json:"max_spins"`
	Shields          int       `json:"shields"`
	AttackCharges    int       `json:"attack_charges"`
	RaidCharges      int       `json:"raid_charges"`
	BonusRounds      int       `json:"bonus_rounds"`
	AttackMultiplier float64   `json:"attack_multiplier"`
	TotalSpins       int       `json:"total_spins"`
	TotalCoinsEarned int64     `json:"total_coins_earned"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type HistoryItem struct {
	SpinID     string    `json:"spin_id"`
	Tier       string    `json:"tier"`
	Symbols    [3]string `json:"symbols"`
	Category   string    `json:"category"`
	Multiplier int       `json:"multiplier"`
	Reward     *Reward   `json:"reward"`
	CreatedAt  time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Spins []HistoryItem `json:"spins"`
}

type TierResponse struct {
	ID         string `json:"id"`
	SpinCost   int    `json:"spin_cost"`   // Стоимость спина в энергии
	BetAmount  int    `json:"bet_amount"`  // Номинальная ставка
	Bonus      string `json:"bonus"`       // Доля бонуса к награде, "0.2" = +20%
	ExtraSpins int    `json:"extra_spins"` // Доп. спины для энергии и бонуса
}

type SymbolResponse struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Weight      int    `json:"weight"`
	Probability string `json:"probability"` // Вероятность на одном барабане, %
}

type StatsResponse struct {
	TotalSpins     int              `json:"total_spins"`
	TotalWins      int              `json:"total_wins"`
	SpinsSpent     int              `json:"spins_spent"`
	WinsByCategory map[string]int   `json:"wins_by_category"`
	RewardsByType  map[string]int64 `json:"rewards_by_type"`
	SymbolCounts   map[string]int   `json:"symbol_counts"`
	WindowSize     int              `json:"window_size"`
	WindowWinRate  float64          `json:"window_win_rate"`
	LastJackpotAt  *time.Time       `json:"last_jackpot_at,omitempty"`
}
