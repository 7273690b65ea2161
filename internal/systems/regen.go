package systems

import (
	"math/rand"
	"sort"

	"geocoin-server/internal/domain"
)

// SpawnResult - итог одного прохода регенерации (spawn pass).
type SpawnResult struct {
	// Origin клетка, в которой находится игрок.
	Origin domain.GridCell

	// Spawned клетки, в которых на ЭТОМ проходе появились новые тайники.
	Spawned []domain.GridCell

	// Active все тайники в радиусе (старые + новые), отсортированные по
	// ключу клетки. По ним UI-слой перерисовывает прямоугольники.
	Active []*domain.CacheZone
}

// RunSpawnPass выполняет проход регенерации вокруг клетки origin.
//
// Для каждой клетки квадрата Чебышёва радиуса radius (сторона 2R+1):
//   - уже зарегистрированный тайник просто попадает в Active, его монеты
//     НЕ перебрасываются (Ensure идемпотентен, но мы даже не доходим до него);
//   - для незанятой клетки делается свежий бросок rng: с вероятностью
//     probability там создается новый тайник.
//
// probability = 0 полностью отключает спавн, radius = 0 ограничивает проход
// клеткой самого игрока. Порядок обхода фиксированный (di, затем dj), чтобы
// при одинаковом сиде результат был воспроизводим.
func RunSpawnPass(reg *domain.CacheRegistry, rng *rand.Rand, origin domain.GridCell, radius int, probability float64) SpawnResult {
	res := SpawnResult{Origin: origin}

	for di := -radius; di <= radius; di++ {
		for dj := -radius; dj <= radius; dj++ {
			cell := domain.GridCell{
				I: origin.I + int32(di),
				J: origin.J + int32(dj),
			}

			if z := reg.Lookup(cell); z != nil {
				// Повторное посещение: тайник уже есть, ничего не бросаем.
				res.Active = append(res.Active, z)
				continue
			}

			if rng.Float64() < probability {
				z := reg.Ensure(cell)
				res.Spawned = append(res.Spawned, cell)
				res.Active = append(res.Active, z)
			}
		}
	}

	sort.Slice(res.Active, func(a, b int) bool {
		return res.Active[a].Cell.Key() < res.Active[b].Cell.Key()
	})

	return res
}
