package domain

import "testing"

func TestCacheZone_CollectAll(t *testing.T) {
	mint := NewMint()
	cell := GridCell{I: 2, J: 3}
	zone := NewCacheZone(cell, mint.Mint(cell, 3))

	// Забираем 3 монеты, тайник пустеет.
	removed := zone.CollectAll()
	if len(removed) != 3 {
		t.Fatalf("CollectAll returned %d coins, want 3", len(removed))
	}
	if zone.CoinCount() != 0 {
		t.Errorf("zone not empty after collect: %d", zone.CoinCount())
	}

	// Повторный сбор - no-op, не ошибка.
	removed = zone.CollectAll()
	if len(removed) != 0 {
		t.Errorf("second CollectAll returned %d coins, want 0", len(removed))
	}
}

func TestCacheZone_Deposit(t *testing.T) {
	mint := NewMint()
	cell := GridCell{I: 0, J: 0}
	zone := NewCacheZone(cell, mint.Mint(cell, 2))

	zone.Deposit(mint.Mint(cell, 5))
	if zone.CoinCount() != 7 {
		t.Errorf("CoinCount = %d, want 7", zone.CoinCount())
	}

	// Пустой депозит ничего не меняет.
	zone.Deposit(nil)
	if zone.CoinCount() != 7 {
		t.Errorf("CoinCount after empty deposit = %d, want 7", zone.CoinCount())
	}
}

func TestCacheZone_MementoRoundTrip(t *testing.T) {
	mint := NewMint()
	cell := GridCell{I: -4, J: 17}
	zone := NewCacheZone(cell, mint.Mint(cell, 3))

	state := zone.Memento()
	original := zone.Coins()

	// Портим зону и восстанавливаем.
	zone.CollectAll()
	zone.Deposit(mint.Mint(GridCell{9, 9}, 1))

	if err := zone.Restore(state); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	restored := zone.Coins()
	if len(restored) != len(original) {
		t.Fatalf("restored %d coins, want %d", len(restored), len(original))
	}
	for k := range original {
		if restored[k] != original[k] {
			t.Errorf("coin %d mismatch: %v vs %v", k, restored[k], original[k])
		}
	}
}

func TestCacheZone_RestoreReplaces(t *testing.T) {
	mint := NewMint()
	cell := GridCell{I: 1, J: 1}
	zone := NewCacheZone(cell, mint.Mint(cell, 5))

	// Restore ЗАМЕНЯЕТ содержимое, а не сливает.
	if err := zone.Restore("1:1#42"); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if zone.CoinCount() != 1 {
		t.Errorf("CoinCount = %d, want 1", zone.CoinCount())
	}
	if zone.Coins()[0].Serial != 42 {
		t.Errorf("Serial = %d, want 42", zone.Coins()[0].Serial)
	}

	// Пустая строка - валидный memento пустого тайника.
	if err := zone.Restore(""); err != nil {
		t.Fatalf("Restore(\"\") failed: %v", err)
	}
	if zone.CoinCount() != 0 {
		t.Errorf("CoinCount = %d, want 0", zone.CoinCount())
	}
}

func TestCacheZone_RestoreCorrupt(t *testing.T) {
	mint := NewMint()
	cell := GridCell{I: 1, J: 1}
	zone := NewCacheZone(cell, mint.Mint(cell, 2))

	if err := zone.Restore("garbage"); err == nil {
		t.Fatal("expected error for corrupt memento")
	}

	// Битая кодировка не должна трогать текущее содержимое.
	if zone.CoinCount() != 2 {
		t.Errorf("zone changed after failed restore: %d coins", zone.CoinCount())
	}
}

func TestCacheZone_RestoreRejectsTrailingGarbage(t *testing.T) {
	mint := NewMint()
	cell := GridCell{I: 1, J: 1}
	zone := NewCacheZone(cell, mint.Mint(cell, 2))

	// Токен с хвостом после серийника - это НЕ монета с serial 42.
	for _, state := range []string{"1:1#42xyz", "1:1#42 ", "1:1#4.2"} {
		if err := zone.Restore(state); err == nil {
			t.Errorf("Restore(%q) accepted trailing garbage", state)
		}
	}

	if zone.CoinCount() != 2 {
		t.Errorf("zone changed after failed restore: %d coins", zone.CoinCount())
	}
}
