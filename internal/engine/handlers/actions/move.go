package actions

import (
	"geocoin-server/internal/engine/handlers"
	"geocoin-server/pkg/api"
	"geocoin-server/pkg/geo"
)

// HandleMove обрабатывает шаг на соседнюю клетку (кнопки управления).
// Один шаг = сдвиг ровно на один шаг сетки по соответствующей оси.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	step := ctx.Factory.Step()

	next := geo.LatLng{
		Lat: ctx.Player.Pos.Lat + float64(p.Di)*step,
		Lng: ctx.Player.Pos.Lng + float64(p.Dj)*step,
	}

	// Перемещение + spawn pass. Сообщений в лог не пишем:
	// движение - самое частое действие, клиенту хватает снимка состояния.
	ctx.Session.MoveTo(next)

	return handlers.EmptyResult(), nil
}
