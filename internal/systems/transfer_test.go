package systems

import (
	"testing"

	"geocoin-server/internal/domain"
	"geocoin-server/pkg/geo"
)

func TestCollect_ThenDepositConservesCount(t *testing.T) {
	mint := domain.NewMint()
	cell := domain.GridCell{I: 2, J: 3}
	zone := domain.NewCacheZone(cell, mint.Mint(cell, 3))
	player := domain.NewPlayerState(geo.LatLng{})

	before := zone.CoinCount()

	_, taken := Collect(player, zone)
	if taken != 3 {
		t.Fatalf("collected %d coins, want 3", taken)
	}
	if player.Carried != 3 {
		t.Fatalf("Carried = %d, want 3", player.Carried)
	}
	if zone.CoinCount() != 0 {
		t.Fatalf("zone not empty: %d", zone.CoinCount())
	}

	_, deposited := Deposit(player, zone, mint)
	if deposited != 3 {
		t.Fatalf("deposited %d coins, want 3", deposited)
	}

	// Количество сохраняется, но НЕ идентичность: монеты чеканятся заново.
	if zone.CoinCount() != before {
		t.Errorf("count not conserved: %d -> %d", before, zone.CoinCount())
	}
	for _, c := range zone.Coins() {
		if c.Serial < 3 {
			t.Errorf("deposited coin reuses old serial %d", c.Serial)
		}
	}
}

func TestCollect_EmptyIsNoop(t *testing.T) {
	zone := domain.NewCacheZone(domain.GridCell{}, nil)
	player := domain.NewPlayerState(geo.LatLng{})

	msg, taken := Collect(player, zone)
	if taken != 0 {
		t.Errorf("collected %d from empty cache", taken)
	}
	if msg == "" {
		t.Error("expected a log message for empty cache")
	}
	if player.Carried != 0 || player.Score != 0 {
		t.Errorf("player mutated on no-op: carried=%d score=%d", player.Carried, player.Score)
	}
}

func TestDeposit_ScoreAndCarry(t *testing.T) {
	mint := domain.NewMint()
	cell := domain.GridCell{I: 1, J: 1}
	zone := domain.NewCacheZone(cell, mint.Mint(cell, 2))
	player := domain.NewPlayerState(geo.LatLng{})
	player.Carried = 5

	_, deposited := Deposit(player, zone, mint)

	// 5 монет из кармана + 2 в тайнике = 7; карман пуст, счет вырос на 5.
	if deposited != 5 {
		t.Fatalf("deposited = %d, want 5", deposited)
	}
	if zone.CoinCount() != 7 {
		t.Errorf("CoinCount = %d, want 7", zone.CoinCount())
	}
	if player.Carried != 0 {
		t.Errorf("Carried = %d, want 0", player.Carried)
	}
	if player.Score != 5 {
		t.Errorf("Score = %d, want 5", player.Score)
	}

	// Вложенные монеты принадлежат клетке-получателю.
	for _, c := range zone.Coins()[2:] {
		if c.Origin() != cell {
			t.Errorf("deposited coin minted for wrong cell: %v", c.Origin())
		}
	}
}

func TestDeposit_EmptyPocketIsNoop(t *testing.T) {
	mint := domain.NewMint()
	cell := domain.GridCell{I: 1, J: 1}
	zone := domain.NewCacheZone(cell, mint.Mint(cell, 2))
	player := domain.NewPlayerState(geo.LatLng{})

	_, deposited := Deposit(player, zone, mint)
	if deposited != 0 {
		t.Errorf("deposited %d with empty pocket", deposited)
	}
	if zone.CoinCount() != 2 || player.Score != 0 {
		t.Errorf("state mutated on no-op: coins=%d score=%d", zone.CoinCount(), player.Score)
	}
}
