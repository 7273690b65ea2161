package actions

import (
	"geocoin-server/internal/engine/handlers"
)

// HandleReset обрабатывает команду RESET - полный сброс сессии.
// Игрок возвращается на старт, реестр тайников очищается целиком,
// снапшот на диске сессия выбрасывает сама.
func HandleReset(ctx handlers.Context) (handlers.Result, error) {
	ctx.Session.ResetAll()
	return handlers.Result{Msg: "Игра сброшена.", MsgType: "INFO"}, nil
}
