package domain

import "testing"

func TestCoinMint_UniqueSerials(t *testing.T) {
	mint := NewMint()

	// Чеканим для разных клеток в несколько заходов -
	// серийники не должны повторяться нигде.
	batches := [][]Coin{
		mint.Mint(GridCell{0, 0}, 3),
		mint.Mint(GridCell{2, 3}, 5),
		mint.Mint(GridCell{0, 0}, 2),
	}

	seen := make(map[uint64]bool)
	prev := int64(-1)
	for _, batch := range batches {
		for _, c := range batch {
			if seen[c.Serial] {
				t.Fatalf("duplicate serial %d", c.Serial)
			}
			seen[c.Serial] = true

			if int64(c.Serial) <= prev {
				t.Fatalf("serials not strictly increasing: %d after %d", c.Serial, prev)
			}
			prev = int64(c.Serial)
		}
	}

	if mint.Issued() != 10 {
		t.Errorf("Issued() = %d, want 10", mint.Issued())
	}
}

func TestCoinMint_ZeroCount(t *testing.T) {
	mint := NewMint()

	if coins := mint.Mint(GridCell{1, 1}, 0); len(coins) != 0 {
		t.Errorf("Mint(0) produced %d coins", len(coins))
	}
	if coins := mint.Mint(GridCell{1, 1}, -5); len(coins) != 0 {
		t.Errorf("Mint(-5) produced %d coins", len(coins))
	}
	if mint.Issued() != 0 {
		t.Errorf("counter advanced on empty mint: %d", mint.Issued())
	}
}

func TestCoinMint_Resume(t *testing.T) {
	mint := NewMint()
	mint.Resume(100)

	coins := mint.Mint(GridCell{5, 5}, 1)
	if coins[0].Serial != 100 {
		t.Errorf("serial after resume = %d, want 100", coins[0].Serial)
	}

	// Откат назад игнорируется.
	mint.Resume(10)
	coins = mint.Mint(GridCell{5, 5}, 1)
	if coins[0].Serial != 101 {
		t.Errorf("serial after backward resume = %d, want 101", coins[0].Serial)
	}
}

func TestCoin_ValueEquality(t *testing.T) {
	a := Coin{OriginI: 2, OriginJ: 3, Serial: 7}
	b := Coin{OriginI: 2, OriginJ: 3, Serial: 7}
	if a != b {
		t.Error("coins with identical content must be equal")
	}

	if a.String() != "2:3#7" {
		t.Errorf("String() = %q", a.String())
	}
	if a.Origin() != (GridCell{I: 2, J: 3}) {
		t.Errorf("Origin() = %v", a.Origin())
	}
}
