package domain

import "fmt"

// Coin - монета. Неизменяемый value-type, сравнение по содержимому.
// Origin - клетка, в которой монета была отчеканена, Serial - глобальный
// порядковый номер в рамках сессии.
type Coin struct {
	OriginI int32  `json:"i"`
	OriginJ int32  `json:"j"`
	Serial  uint64 `json:"serial"`
}

// Origin возвращает клетку происхождения монеты.
func (c Coin) Origin() GridCell {
	return GridCell{I: c.OriginI, J: c.OriginJ}
}

// String - компактный идентификатор монеты вида "i:j#serial".
func (c Coin) String() string {
	return fmt.Sprintf("%d:%d#%d", c.OriginI, c.OriginJ, c.Serial)
}

// CoinMint чеканит монеты со строго возрастающими серийными номерами.
//
// Счетчик принадлежит сессии, а НЕ пакету: две независимые сессии (или два
// теста) не делят состояние. За всю жизнь счетчика никакие две монеты
// не получают одинаковый Serial, даже для разных клеток.
//
// НЕ потокобезопасен: все вызовы должны идти из горутины сессии.
type CoinMint struct {
	next uint64
}

// NewMint создает счетчик монет с нулевой позиции.
func NewMint() *CoinMint {
	return &CoinMint{}
}

// Mint чеканит n монет для клетки cell. При n <= 0 возвращает пустой срез.
func (m *CoinMint) Mint(cell GridCell, n int) []Coin {
	if n <= 0 {
		return nil
	}

	coins := make([]Coin, 0, n)
	for k := 0; k < n; k++ {
		coins = append(coins, Coin{
			OriginI: cell.I,
			OriginJ: cell.J,
			Serial:  m.next,
		})
		m.next++
	}
	return coins
}

// Issued возвращает количество отчеканенных монет (= следующий Serial).
func (m *CoinMint) Issued() uint64 {
	return m.next
}

// Resume переставляет счетчик вперед после загрузки снапшота,
// чтобы новые монеты не переиспользовали старые серийные номера.
// Откат назад игнорируется.
func (m *CoinMint) Resume(next uint64) {
	if next > m.next {
		m.next = next
	}
}
