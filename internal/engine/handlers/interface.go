package handlers

import (
	"encoding/json"

	"geocoin-server/internal/domain"
	"geocoin-server/pkg/geo"
)

// SessionOps - операции уровня сессии, которые нужны хендлерам.
// GameSession неявно реализует этот интерфейс.
type SessionOps interface {
	// MoveTo перемещает игрока и запускает проход регенерации кешей.
	MoveTo(pos geo.LatLng)

	// ResetAll сбрасывает игрока и реестр тайников к начальному состоянию.
	ResetAll()
}

// Context передает хендлеру состояние игры.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Session  SessionOps
	Factory  *geo.Factory
	Registry *domain.CacheRegistry
	Player   *domain.PlayerState
	Mint     *domain.CoinMint
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, LOOT, ERROR)
}

// HandlerFunc - это контракт для любой команды (MOVE, COLLECT, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
