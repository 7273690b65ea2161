package systems

import (
	"fmt"

	"geocoin-server/internal/domain"
)

// --- COLLECT ---

// Collect забирает ВСЕ монеты из тайника в карман игрока.
// Пустой тайник - не ошибка, просто no-op. Возвращает текст для лога
// и количество забранных монет.
func Collect(player *domain.PlayerState, zone *domain.CacheZone) (string, int) {
	removed := zone.CollectAll()
	if len(removed) == 0 {
		return "Тайник пуст.", 0
	}

	player.Carried += len(removed)
	return fmt.Sprintf("Вы забираете %d монет из тайника %s.", len(removed), zone.Cell), len(removed)
}

// --- DEPOSIT ---

// Deposit перекладывает все монеты из кармана игрока в тайник.
//
// Монеты чеканятся ЗАНОВО для клетки-получателя: переносится количество,
// а не конкретные экземпляры (монеты взаимозаменяемы). Score растет на
// количество вложенных монет, карман обнуляется.
func Deposit(player *domain.PlayerState, zone *domain.CacheZone, mint *domain.CoinMint) (string, int) {
	n := player.Carried
	if n == 0 {
		return "В кармане нет монет.", 0
	}

	zone.Deposit(mint.Mint(zone.Cell, n))
	player.Score += n
	player.Carried = 0

	return fmt.Sprintf("Вы вкладываете %d монет в тайник %s.", n, zone.Cell), n
}
