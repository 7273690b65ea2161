package agent

import (
	"encoding/json"
	"log"
	"math/rand"

	"geocoin-server/internal/engine"
	"geocoin-server/pkg/api"
)

// Bot - "игрок-компьютер" для обкатки регенерации и персистентности.
// Этот код является примером ВНЕШНЕГО клиента: бот регистрируется в хабе
// так же, как и обычный игрок через WebSocket, получает снимки состояния
// и на их основе отправляет команды обратно.
//
// Жизненный цикл:
//  1. NewBot -> Регистрация в хабе сессии, получение личного канала (Inbox).
//  2. Run -> Запуск в отдельной горутине, слушает свой Inbox.
//  3. На каждый снимок отвечает одним действием (makeMove).
type Bot struct {
	ClientID string
	Session  *engine.GameSession // Прямая ссылка на движок (для простоты в этом проекте)
	Inbox    chan api.ServerResponse

	rng *rand.Rand
}

func NewBot(clientID string, session *engine.GameSession, seed int64) *Bot {
	log.Printf("[BOT] Creating agent %s", clientID)
	return &Bot{
		ClientID: clientID,
		Session:  session,
		// Бот регистрируется в хабе как обычный клиент и получает свой канал для обновлений.
		Inbox: session.Hub.Register(clientID),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Session.Hub.Unregister(b.ClientID)

	b.Session.ProcessCommand(api.ClientCommand{Action: "INIT", Token: b.ClientID})

	for state := range b.Inbox {
		b.makeMove(state)
	}
	log.Printf("[BOT] Agent %s shut down.", b.ClientID)
}

// makeMove - мозг бота. Стратегия нарочно глупая:
// если рядом есть непустой тайник - забрать монеты, иначе - случайный шаг.
// Этого достаточно, чтобы прогнать тысячи spawn pass'ов.
func (b *Bot) makeMove(state api.ServerResponse) {
	if state.Player == nil {
		return
	}

	for _, c := range state.Caches {
		if c.CoinCount == 0 {
			continue
		}
		// Забираем только из клетки, в которой стоим.
		if insideBounds(state.Player.Pos.Lat, state.Player.Pos.Lng, c) {
			payload, _ := json.Marshal(api.CellPayload{I: c.I, J: c.J})
			b.Session.ProcessCommand(api.ClientCommand{
				Action:  "COLLECT",
				Token:   b.ClientID,
				Payload: payload,
			})
			return
		}
	}

	// Случайный шаг в одном из 8 направлений.
	di := b.rng.Intn(3) - 1
	dj := b.rng.Intn(3) - 1
	if di == 0 && dj == 0 {
		di = 1
	}

	payload, _ := json.Marshal(api.DirectionPayload{Di: di, Dj: dj})
	b.Session.ProcessCommand(api.ClientCommand{
		Action:  "MOVE",
		Token:   b.ClientID,
		Payload: payload,
	})
}

func insideBounds(lat, lng float64, c api.CacheView) bool {
	return lat >= c.Bounds.SouthWest.Lat && lat < c.Bounds.NorthEast.Lat &&
		lng >= c.Bounds.SouthWest.Lng && lng < c.Bounds.NorthEast.Lng
}
