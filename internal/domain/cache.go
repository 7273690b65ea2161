package domain

import (
	"fmt"
	"strings"
)

// CacheZone - тайник с монетами, привязанный к одной клетке сетки.
//
// Создается один раз на клетку (лениво, через CacheRegistry.Ensure) и живет
// до конца сессии либо до явного Reset. Явного состояния "пустой/полный" нет -
// оно выводится из количества монет.
type CacheZone struct {
	Cell GridCell

	coins []Coin
}

// NewCacheZone создает тайник с начальным набором монет.
func NewCacheZone(cell GridCell, initial []Coin) *CacheZone {
	z := &CacheZone{Cell: cell}
	z.coins = append(z.coins, initial...)
	return z
}

// CoinCount возвращает текущее количество монет в тайнике.
func (z *CacheZone) CoinCount() int {
	return len(z.coins)
}

// Coins возвращает копию монет тайника (для отображения и снапшотов).
func (z *CacheZone) Coins() []Coin {
	out := make([]Coin, len(z.coins))
	copy(out, z.coins)
	return out
}

// CollectAll опустошает тайник и возвращает изъятые монеты.
// Пустой тайник - не ошибка: возвращается пустой срез, состояние не меняется.
func (z *CacheZone) CollectAll() []Coin {
	removed := z.coins
	z.coins = nil
	return removed
}

// Deposit добавляет монеты в тайник. Происхождение монет не проверяется:
// при переносе монеты чеканятся заново для клетки-получателя.
func (z *CacheZone) Deposit(coins []Coin) {
	if len(coins) == 0 {
		return
	}
	z.coins = append(z.coins, coins...)
}

// Memento возвращает непрозрачную текстовую кодировку содержимого тайника.
// Формат: токены "i:j#serial" через запятую, пустой тайник - пустая строка.
// Парой к нему идет Restore.
func (z *CacheZone) Memento() string {
	if len(z.coins) == 0 {
		return ""
	}

	tokens := make([]string, 0, len(z.coins))
	for _, c := range z.coins {
		tokens = append(tokens, c.String())
	}
	return strings.Join(tokens, ",")
}

// Restore полностью ЗАМЕНЯЕТ содержимое тайника монетами из снапшота
// (не сливает с текущими). При битой кодировке тайник не меняется.
func (z *CacheZone) Restore(state string) error {
	if state == "" {
		z.coins = nil
		return nil
	}

	tokens := strings.Split(state, ",")
	coins := make([]Coin, 0, len(tokens))
	for _, tok := range tokens {
		var c Coin
		if _, err := fmt.Sscanf(tok, "%d:%d#%d", &c.OriginI, &c.OriginJ, &c.Serial); err != nil {
			return fmt.Errorf("corrupt cache memento token %q: %w", tok, err)
		}
		// Sscanf не замечает мусор после последнего числа ("1:1#42xyz"):
		// сверяем токен с канонической записью разобранной монеты.
		if c.String() != tok {
			return fmt.Errorf("corrupt cache memento token %q", tok)
		}
		coins = append(coins, c)
	}

	z.coins = coins
	return nil
}
