package api

import (
	"encoding/json"

	"geocoin-server/pkg/geo"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" игры: позиция игрока и все активные
// кеши в радиусе видимости. Отправляется после каждой обработанной команды.
type ServerResponse struct {
	// Type тип сообщения. "INIT" для первого снимка, дальше "UPDATE".
	Type string `json:"type"`

	// Player состояние игрока (позиция, очки, карман, след).
	Player *PlayerView `json:"player,omitempty"`

	// Grid параметры сетки, чтобы клиент мог сопоставить клетки и карту.
	Grid *GridMeta `json:"grid,omitempty"`

	// Caches все активные тайники в радиусе вокруг игрока.
	// Клиент обязан перерисовывать их по этим данным после КАЖДОЙ мутации,
	// а не хранить ссылки на старое состояние.
	Caches []CacheView `json:"caches,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлой команды.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит параметры мировой сетки.
type GridMeta struct {
	// Step шаг сетки в градусах.
	Step float64 `json:"step"`

	// Radius радиус (в клетках), в котором сервер сообщает о кешах.
	Radius int `json:"radius"`

	// Origin стартовая позиция игрока.
	Origin geo.LatLng `json:"origin"`
}

// PlayerView это DTO состояния игрока.
type PlayerView struct {
	Pos geo.LatLng `json:"pos"`

	// Score набранные очки. Только растет.
	Score int `json:"score"`

	// Carried монеты в кармане (собраны, но еще не вложены).
	Carried int `json:"carried"`

	// Trail история позиций для отрисовки полилинии перемещений.
	Trail []geo.LatLng `json:"trail,omitempty"`
}

// CacheView это DTO одного тайника.
// Содержит границы клетки и количество монет - все, что нужно UI-слою,
// чтобы отрисовать прямоугольник и popup.
type CacheView struct {
	I int32 `json:"i"`
	J int32 `json:"j"`

	Bounds geo.Bounds `json:"bounds"`

	CoinCount int `json:"coinCount"`

	// Coins список монет тайника (идентификаторы вида "i:j#serial").
	// Нужен popup'у, чтобы показать, откуда монеты родом.
	Coins []string `json:"coins,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, LOOT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID клиентской сессии. Выдается при первом подключении.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для шага по сетке (MOVE).
// Одна кнопка управления = сдвиг на одну клетку.
type DirectionPayload struct {
	Di int `json:"di"` // Смещение по широте в клетках (-1, 0, 1)
	Dj int `json:"dj"` // Смещение по долготе в клетках (-1, 0, 1)
}

// PositionPayload используется для абсолютного обновления позиции (POSITION).
// Это единственная точка входа для геолокации: сервер обрабатывает её как
// обычное перемещение (regenerate + persist).
type PositionPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CellPayload используется для действий с тайником (COLLECT, DEPOSIT).
// Клиент передает СТАБИЛЬНЫЙ идентификатор клетки, а не ссылку на состояние:
// сервер сам находит актуальную зону в реестре.
type CellPayload struct {
	I int32 `json:"i"`
	J int32 `json:"j"`
}
