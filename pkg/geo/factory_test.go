package geo

import "testing"

func TestFactory_FlyweightStability(t *testing.T) {
	f := NewFactory(1e-4)

	// Для одной и той же пары (i, j) всегда одно и то же значение.
	pairs := [][2]int32{{0, 0}, {1, -1}, {-5, 7}, {369894, -620628}}
	for _, p := range pairs {
		first := f.LatLng(p[0], p[1])
		second := f.LatLng(p[0], p[1])
		if first != second {
			t.Errorf("LatLng(%d, %d) unstable: %v vs %v", p[0], p[1], first, second)
		}
	}

	// Повторные запросы не раздувают кеш.
	size := f.Size()
	for _, p := range pairs {
		f.LatLng(p[0], p[1])
	}
	if f.Size() != size {
		t.Errorf("cache grew on repeated lookups: %d -> %d", size, f.Size())
	}
}

func TestFactory_CellOf(t *testing.T) {
	f := NewFactory(1e-4)

	tests := []struct {
		name string
		pos  LatLng
		i, j int32
	}{
		{"origin", LatLng{0, 0}, 0, 0},
		{"inside first cell", LatLng{0.00005, 0.00005}, 0, 0},
		{"mid cell", LatLng{0.00025, 0.00035}, 2, 3},
		// Отрицательные координаты округляются ВНИЗ, а не к нулю.
		{"negative", LatLng{-0.00005, -0.00015}, -1, -2},
		{"campus", LatLng{36.98949379578401, -122.06277128548504}, 369894, -1220628},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, j := f.CellOf(tt.pos)
			if i != tt.i || j != tt.j {
				t.Errorf("CellOf(%v) = (%d, %d), want (%d, %d)", tt.pos, i, j, tt.i, tt.j)
			}
		})
	}
}

func TestFactory_CellBounds(t *testing.T) {
	f := NewFactory(1e-4)

	b := f.CellBounds(2, 3)

	if b.SouthWest != f.LatLng(2, 3) {
		t.Errorf("SouthWest mismatch: %v", b.SouthWest)
	}
	if b.NorthEast != f.LatLng(3, 4) {
		t.Errorf("NorthEast mismatch: %v", b.NorthEast)
	}
	if b.NorthEast.Lat <= b.SouthWest.Lat || b.NorthEast.Lng <= b.SouthWest.Lng {
		t.Error("bounds are degenerate")
	}
}

func TestFactory_RoundTrip(t *testing.T) {
	f := NewFactory(1e-4)

	// Канонический угол клетки должен попадать в саму клетку.
	for _, p := range [][2]int32{{0, 0}, {10, 20}, {-3, -4}} {
		anchor := f.LatLng(p[0], p[1])
		i, j := f.CellOf(anchor)
		if i != p[0] || j != p[1] {
			t.Errorf("round trip (%d, %d) -> %v -> (%d, %d)", p[0], p[1], anchor, i, j)
		}
	}
}
