package domain

// Параметры мира по умолчанию.
// Шаг сетки ОБЯЗАН совпадать у фабрики координат и у логики регенерации,
// иначе границы клеток "поплывут" (cell-boundary drift).
const (
	// DefaultGridStep - шаг сетки в градусах (~11 метров по широте).
	DefaultGridStep = 1e-4

	// DefaultSpawnRadius - радиус Чебышёва, в котором вокруг игрока
	// появляются кеши (квадрат со стороной 2R+1).
	DefaultSpawnRadius = 8

	// DefaultSpawnProbability - вероятность появления кеша в одной клетке
	// за один проход регенерации.
	DefaultSpawnProbability = 0.1
)

// Границы случайного начального количества монет в новом тайнике.
const (
	MinInitialCoins = 1
	MaxInitialCoins = 5
)
