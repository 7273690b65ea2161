package engine

import (
	"time"

	"geocoin-server/internal/domain"
	"geocoin-server/pkg/geo"
)

// Config хранит параметры запуска сессии.
// Поля размечены для env-парсера: любое значение можно переопределить
// переменной окружения без пересборки.
type Config struct {
	// Seed - мастер-зерно. От него зависят броски спавна и начальные
	// количества монет: одинаковый сид = воспроизводимый мир.
	Seed int64 `env:"GC_SEED"`

	Port    string `env:"GC_PORT" envDefault:"8080"`
	DataDir string `env:"GC_DATA_DIR" envDefault:"./data"`

	// Шаг сетки в градусах. Общий для фабрики координат и регенерации.
	GridStep float64 `env:"GC_GRID_STEP" envDefault:"0.0001"`

	// Радиус Чебышёва спавна (квадрат со стороной 2R+1).
	SpawnRadius int `env:"GC_SPAWN_RADIUS" envDefault:"8"`

	// Вероятность появления кеша в одной клетке за проход.
	SpawnProbability float64 `env:"GC_SPAWN_PROBABILITY" envDefault:"0.1"`

	// Стартовая позиция игрока.
	OriginLat float64 `env:"GC_ORIGIN_LAT" envDefault:"36.98949379578401"`
	OriginLng float64 `env:"GC_ORIGIN_LNG" envDefault:"-122.06277128548504"`
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed:             time.Now().UnixNano(),
		Port:             "8080",
		DataDir:          "./data",
		GridStep:         domain.DefaultGridStep,
		SpawnRadius:      domain.DefaultSpawnRadius,
		SpawnProbability: domain.DefaultSpawnProbability,
		OriginLat:        36.98949379578401,
		OriginLng:        -122.06277128548504,
	}
}

// Origin возвращает стартовую позицию как координату.
func (c Config) Origin() geo.LatLng {
	return geo.LatLng{Lat: c.OriginLat, Lng: c.OriginLng}
}
