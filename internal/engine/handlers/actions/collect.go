package actions

import (
	"geocoin-server/internal/domain"
	"geocoin-server/internal/engine/handlers"
	"geocoin-server/internal/systems"
	"geocoin-server/pkg/api"
)

// HandleCollect обрабатывает команду COLLECT - забрать все монеты из тайника.
// Клиент присылает идентификатор клетки, актуальную зону ищем в реестре сами.
func HandleCollect(ctx handlers.Context, p api.CellPayload) (handlers.Result, error) {
	zone := ctx.Registry.Lookup(domain.GridCell{I: p.I, J: p.J})
	if zone == nil {
		return handlers.Result{Msg: "Тайник не найден.", MsgType: "ERROR"}, nil
	}

	msg, taken := systems.Collect(ctx.Player, zone)
	if taken == 0 {
		// Пустой тайник - не ошибка, просто no-op.
		return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
	}

	return handlers.Result{Msg: msg, MsgType: "LOOT"}, nil
}
