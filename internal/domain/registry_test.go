package domain

import (
	"math/rand"
	"testing"
)

func newTestRegistry(seed int64) *CacheRegistry {
	return NewCacheRegistry(NewMint(), rand.New(rand.NewSource(seed)))
}

func TestCacheRegistry_EnsureIdempotent(t *testing.T) {
	reg := newTestRegistry(1)
	cell := GridCell{I: 2, J: 3}

	zone := reg.Ensure(cell)
	count := zone.CoinCount()

	if count < MinInitialCoins || count > MaxInitialCoins {
		t.Fatalf("initial coin count %d outside [%d, %d]", count, MinInitialCoins, MaxInitialCoins)
	}

	// Повторные вызовы возвращают ту же зону и не перебрасывают монеты.
	for k := 0; k < 10; k++ {
		again := reg.Ensure(cell)
		if again != zone {
			t.Fatal("Ensure returned a different zone for the same cell")
		}
		if again.CoinCount() != count {
			t.Fatalf("coin count re-rolled: %d -> %d", count, again.CoinCount())
		}
	}

	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestCacheRegistry_LookupDoesNotCreate(t *testing.T) {
	reg := newTestRegistry(1)

	if z := reg.Lookup(GridCell{I: 5, J: 5}); z != nil {
		t.Error("Lookup created a zone")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func TestCacheRegistry_Reset(t *testing.T) {
	reg := newTestRegistry(42)
	cell := GridCell{I: 0, J: 0}

	first := reg.Ensure(cell)
	first.CollectAll() // опустошаем, чтобы отличить старую зону от новой

	reg.Reset()
	if reg.Len() != 0 {
		t.Fatalf("Len() after reset = %d, want 0", reg.Len())
	}

	// После сброса Ensure создает СВЕЖУЮ зону с новым броском монет.
	second := reg.Ensure(cell)
	if second == first {
		t.Fatal("Ensure returned the old zone after reset")
	}
	if c := second.CoinCount(); c < MinInitialCoins || c > MaxInitialCoins {
		t.Errorf("fresh zone coin count %d outside [%d, %d]", c, MinInitialCoins, MaxInitialCoins)
	}
}

func TestCacheRegistry_RestoreZone(t *testing.T) {
	reg := newTestRegistry(1)
	cell := GridCell{I: 7, J: -2}

	if err := reg.RestoreZone(cell, "7:-2#3,7:-2#4"); err != nil {
		t.Fatalf("RestoreZone failed: %v", err)
	}

	zone := reg.Lookup(cell)
	if zone == nil {
		t.Fatal("restored zone not found")
	}
	if zone.CoinCount() != 2 {
		t.Errorf("CoinCount = %d, want 2", zone.CoinCount())
	}

	if err := reg.RestoreZone(GridCell{I: 1, J: 1}, "broken"); err == nil {
		t.Error("expected error for corrupt memento")
	}
	if reg.Lookup(GridCell{I: 1, J: 1}) != nil {
		t.Error("corrupt record must not register a zone")
	}
}
