package actions

import (
	"geocoin-server/internal/engine/handlers"
	"geocoin-server/pkg/api"
	"geocoin-server/pkg/geo"
)

// HandlePosition обрабатывает абсолютное обновление позиции от геолокации.
//
// Для ядра это такое же перемещение, как и шаг кнопкой: тот же вход,
// тот же цикл regenerate + persist. Ошибки геолокации (нет разрешения,
// потерян сигнал) сюда не доходят - их клиент показывает сам.
func HandlePosition(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	ctx.Session.MoveTo(geo.LatLng{Lat: p.Lat, Lng: p.Lng})
	return handlers.EmptyResult(), nil
}
