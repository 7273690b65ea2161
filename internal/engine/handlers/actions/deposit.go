package actions

import (
	"geocoin-server/internal/domain"
	"geocoin-server/internal/engine/handlers"
	"geocoin-server/internal/systems"
	"geocoin-server/pkg/api"
)

// HandleDeposit обрабатывает команду DEPOSIT - вложить монеты из кармана
// в тайник. Монеты чеканятся заново для клетки-получателя (см. systems.Deposit).
func HandleDeposit(ctx handlers.Context, p api.CellPayload) (handlers.Result, error) {
	zone := ctx.Registry.Lookup(domain.GridCell{I: p.I, J: p.J})
	if zone == nil {
		return handlers.Result{Msg: "Тайник не найден.", MsgType: "ERROR"}, nil
	}

	msg, deposited := systems.Deposit(ctx.Player, zone, ctx.Mint)
	if deposited == 0 {
		return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
	}

	return handlers.Result{Msg: msg, MsgType: "LOOT"}, nil
}
