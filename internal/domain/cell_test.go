package domain

import "testing"

func TestCellKey_RoundTrip(t *testing.T) {
	cells := []GridCell{
		{0, 0},
		{1, 2},
		{-1, -2},
		{369894, -1220628},
		{-2147483648, 2147483647}, // границы int32
	}

	for _, c := range cells {
		got := c.Key().Cell()
		if got != c {
			t.Errorf("pack/unpack mismatch: %v -> %v", c, got)
		}
	}
}

func TestCellKey_NoCollisions(t *testing.T) {
	// Строковый ключ вида "1:23" столкнулся бы с "12:3" при наивной
	// конкатенации. Упакованный ключ различает такие пары.
	a := GridCell{I: 1, J: 23}
	b := GridCell{I: 12, J: 3}
	if a.Key() == b.Key() {
		t.Errorf("distinct cells share a key: %v vs %v", a, b)
	}

	// Знак не должен "перетекать" между половинами ключа.
	c := GridCell{I: -1, J: 0}
	d := GridCell{I: 0, J: -1}
	if c.Key() == d.Key() {
		t.Errorf("distinct cells share a key: %v vs %v", c, d)
	}
}
