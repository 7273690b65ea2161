package actions

import (
	"geocoin-server/internal/engine/handlers"
)

// HandleInit отвечает на первое сообщение клиента.
// Состояние не меняется: сессия сама отправит полный снимок после команды.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Msg: "Добро пожаловать в Geocoin Carrier.", MsgType: "INFO"}, nil
}
