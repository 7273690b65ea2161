package domain

import "math/rand"

// CacheRegistry - реестр тайников: мапа от упакованного ключа клетки к зоне.
//
// Зоны создаются лениво (lookup-or-create) и никогда не пересоздаются для
// уже известной клетки - повторные проходы регенерации не перебрасывают
// количество монет. Реестр принадлежит сессии, живет в памяти.
type CacheRegistry struct {
	zones map[CellKey]*CacheZone

	mint *CoinMint
	rng  *rand.Rand
}

// NewCacheRegistry создает пустой реестр.
// mint и rng принадлежат сессии и передаются явно, а не берутся из глобалов.
func NewCacheRegistry(mint *CoinMint, rng *rand.Rand) *CacheRegistry {
	return &CacheRegistry{
		zones: make(map[CellKey]*CacheZone),
		mint:  mint,
		rng:   rng,
	}
}

// Ensure возвращает тайник клетки, создавая его при первом обращении.
// Идемпотентен: повторный вызов для той же клетки возвращает ту же зону
// и НЕ перебрасывает начальное количество монет.
func (r *CacheRegistry) Ensure(cell GridCell) *CacheZone {
	if z, ok := r.zones[cell.Key()]; ok {
		return z
	}

	// Начальное количество монет: случайное в [MinInitialCoins, MaxInitialCoins].
	n := r.rng.Intn(MaxInitialCoins-MinInitialCoins+1) + MinInitialCoins
	z := NewCacheZone(cell, r.mint.Mint(cell, n))
	r.zones[cell.Key()] = z
	return z
}

// Lookup возвращает тайник клетки или nil, если он еще не создан.
// В отличие от Ensure ничего не создает.
func (r *CacheRegistry) Lookup(cell GridCell) *CacheZone {
	return r.zones[cell.Key()]
}

// RestoreZone восстанавливает тайник из memento при загрузке снапшота.
// Создает зону без случайного броска: содержимое целиком берется из кодировки.
func (r *CacheRegistry) RestoreZone(cell GridCell, memento string) error {
	z := NewCacheZone(cell, nil)
	if err := z.Restore(memento); err != nil {
		return err
	}
	r.zones[cell.Key()] = z
	return nil
}

// Len возвращает количество зарегистрированных тайников.
func (r *CacheRegistry) Len() int {
	return len(r.zones)
}

// ForEach вызывает fn для каждого тайника (порядок не определен).
func (r *CacheRegistry) ForEach(fn func(*CacheZone)) {
	for _, z := range r.zones {
		fn(z)
	}
}

// Reset полностью очищает реестр. После него Ensure для ранее заселенной
// клетки создаст СВЕЖУЮ зону с новым броском монет.
func (r *CacheRegistry) Reset() {
	r.zones = make(map[CellKey]*CacheZone)
}
