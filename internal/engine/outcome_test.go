package engine

import "testing"

func permutations(a, b, c Symbol) [][3]Symbol {
	return [][3]Symbol{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}
}

func TestEvaluateOrderInvariance(t *testing.T) {
	for _, p := range permutations(Coin, Coin, Attack) {
		out := Evaluate(p, Bonus)
		if !out.IsWin || out.Category != CategoryCoin || out.Multiplier != 1 {
			t.Errorf("Evaluate(%v) = %+v, want coin x1 win", p, out)
		}
	}

	for _, p := range permutations(Bonus, Bonus, Bonus) {
		out := Evaluate(p, Bonus)
		if !out.IsWin || out.Category != CategoryJackpot || out.Multiplier != 10 {
			t.Errorf("Evaluate(%v) = %+v, want jackpot x10", p, out)
		}
	}
}

func TestEvaluateAllTriples(t *testing.T) {
	for _, a := range AllSymbols {
		for _, b := range AllSymbols {
			for _, c := range AllSymbols {
				triple := [3]Symbol{a, b, c}
				out := Evaluate(triple, Bonus)

				for _, p := range permutations(a, b, c) {
					other := Evaluate(p, Bonus)
					if other.IsWin != out.IsWin || other.Category != out.Category || other.Multiplier != out.Multiplier {
						t.Fatalf("Evaluate(%v) = %+v differs from Evaluate(%v) = %+v", p, other, triple, out)
					}
				}

				switch {
				case a == b && b == c && a == Bonus:
					if out.Category != CategoryJackpot || out.Multiplier != 10 {
						t.Errorf("%v: got %+v, want jackpot", triple, out)
					}
				case a == b && b == c:
					if out.Category != categoryOf(a) || out.Multiplier != 3 {
						t.Errorf("%v: got %+v, want three of a kind", triple, out)
					}
				case a != b && b != c && a != c:
					if out.IsWin || out.Category != CategoryNone || out.Multiplier != 0 {
						t.Errorf("%v: got %+v, want no win", triple, out)
					}
					reward, err := CalculateReward(out, Wager{Amount: 5, Tier: CanonicalTiers[2]}, 3)
					if err != nil || reward != nil {
						t.Errorf("%v: CalculateReward = %+v, %v, want nil, nil", triple, reward, err)
					}
				default:
					if !out.IsWin || out.Multiplier != 1 {
						t.Errorf("%v: got %+v, want pair", triple, out)
					}
				}
			}
		}
	}
}

func TestEvaluatePairPicksRepeatedSymbol(t *testing.T) {
	tests := []struct {
		symbols [3]Symbol
		want    Category
	}{
		{[3]Symbol{Raid, Raid, Energy}, CategoryRaid},
		{[3]Symbol{Energy, Raid, Raid}, CategoryRaid},
		{[3]Symbol{Raid, Energy, Raid}, CategoryRaid},
		{[3]Symbol{Bonus, Coin, Bonus}, CategoryBonus},
	}

	for _, tt := range tests {
		if got := Evaluate(tt.symbols, Bonus); got.Category != tt.want {
			t.Errorf("Evaluate(%v).Category = %s, want %s", tt.symbols, got.Category, tt.want)
		}
	}
}

func TestEvaluateCustomWildcard(t *testing.T) {
	out := Evaluate([3]Symbol{Shield, Shield, Shield}, Shield)
	if out.Category != CategoryJackpot || out.Multiplier != 10 {
		t.Errorf("got %+v, want jackpot on custom wildcard", out)
	}

	out = Evaluate([3]Symbol{Bonus, Bonus, Bonus}, Shield)
	if out.Category != CategoryBonus || out.Multiplier != 3 {
		t.Errorf("got %+v, want bonus three of a kind", out)
	}
}

func TestEvaluateInvalidSymbolIsLoss(t *testing.T) {
	tests := [][3]Symbol{
		{Symbol(9), Symbol(9), Symbol(9)},
		{Coin, Coin, Symbol(200)},
		{Symbol(7), Bonus, Bonus},
	}

	for _, symbols := range tests {
		out := Evaluate(symbols, Bonus)
		if out.IsWin || out.Category != CategoryNone || out.Multiplier != 0 {
			t.Errorf("Evaluate(%v) = %+v, want loss", symbols, out)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for i := range categoryNames {
		c := Category(i)
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCategory("coins"); err == nil {
		t.Error("ParseCategory(coins) should fail")
	}
}
