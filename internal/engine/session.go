package engine

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"geocoin-server/internal/domain"
	"geocoin-server/internal/engine/handlers"
	"geocoin-server/internal/engine/handlers/actions"
	"geocoin-server/internal/infrastructure/storage"
	"geocoin-server/internal/network"
	"geocoin-server/internal/systems"
	"geocoin-server/pkg/api"
	"geocoin-server/pkg/geo"
)

// GameSession владеет ВСЕМ изменяемым состоянием игры: реестром тайников,
// игроком, счетчиком монет и генератором случайностей. Никаких глобалов -
// несколько сессий (или тестов) спокойно живут рядом.
//
// Все мутации происходят в одной горутине, читающей CommandChan
// (single-writer rule). Внешний мир - WebSocket, геолокация, боты -
// общается с сессией только через команды.
type GameSession struct {
	Config Config

	Factory  *geo.Factory
	Registry *domain.CacheRegistry
	Player   *domain.PlayerState
	Mint     *domain.CoinMint

	Logs []api.LogEntry

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc

	// rng - единственный источник случайностей сессии (спавн + броски монет).
	rng *rand.Rand

	// store может быть nil (тесты, запуск без персистентности).
	store *storage.SnapshotStore

	// active - тайники в радиусе после последнего spawn pass.
	// Именно их видит клиент.
	active []*domain.CacheZone

	// stopping + done реализуют остановку цикла команд.
	// После закрытия done состояние сессии можно читать без гонок.
	stopping atomic.Bool
	done     chan struct{}
}

// NewSession собирает сессию из конфига и сразу выполняет первый проход
// регенерации вокруг стартовой позиции.
func NewSession(cfg Config) *GameSession {
	rng := rand.New(rand.NewSource(cfg.Seed))
	mint := domain.NewMint()

	s := &GameSession{
		Config:      cfg,
		Factory:     geo.NewFactory(cfg.GridStep),
		Registry:    domain.NewCacheRegistry(mint, rng),
		Player:      domain.NewPlayerState(cfg.Origin()),
		Mint:        mint,
		Logs:        []api.LogEntry{},
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		rng:         rng,
		done:        make(chan struct{}),
	}

	s.registerHandlers()
	s.Regenerate()
	return s
}

func (s *GameSession) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionPosition] = handlers.WithPayload(actions.HandlePosition)
	s.handlers[domain.ActionCollect] = handlers.WithPayload(actions.HandleCollect)
	s.handlers[domain.ActionDeposit] = handlers.WithPayload(actions.HandleDeposit)
	s.handlers[domain.ActionReset] = handlers.WithEmptyPayload(actions.HandleReset)
}

// AttachStore подключает хранилище снапшотов и пытается восстановить
// сохраненную сессию. Битый или отсутствующий снапшот - не фатально:
// остаемся на дефолтном состоянии.
func (s *GameSession) AttachStore(store *storage.SnapshotStore) {
	s.store = store

	snap, err := store.Load()
	if err != nil {
		log.Printf("[SESSION] Snapshot unreadable, starting fresh: %v", err)
		return
	}
	if snap == nil {
		return
	}
	s.RestoreSnapshot(snap)
}

// Start запускает цикл обработки команд в отдельной горутине.
func (s *GameSession) Start() {
	go s.Run()
}

// Stop останавливает цикл команд и дожидается его завершения.
// Команда остановки проходит через общую очередь, поэтому всё, что успело
// встать в очередь раньше, будет обработано и сохранено. После возврата
// из Stop главная горутина может снимать финальный снапшот: цикл мертв,
// мутировать Registry больше некому.
func (s *GameSession) Stop() {
	if !s.stopping.CompareAndSwap(false, true) {
		<-s.done
		return
	}
	s.CommandChan <- domain.InternalCommand{Action: domain.ActionShutdown}
	<-s.done
}

// ProcessCommand принимает команду от внешнего мира (WebSocket, бот)
// и ставит её в очередь сессии.
func (s *GameSession) ProcessCommand(externalCmd api.ClientCommand) {
	// После начала остановки команды молча отбрасываются: цикл уже
	// не читает очередь, блокировать WebSocket-читателей нельзя.
	if s.stopping.Load() {
		return
	}

	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		log.Printf("Unknown action: %s", externalCmd.Action)
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}
}

// --- COMMAND LOOP ---

// Run - единственная горутина, мутирующая состояние сессии.
// Каждая команда обрабатывается до конца (включая сохранение снапшота),
// прежде чем будет взята следующая.
func (s *GameSession) Run() {
	log.Println("[LOOP] Session loop started")

	for cmd := range s.CommandChan {
		if cmd.Action == domain.ActionShutdown {
			break
		}

		s.executeCommand(cmd)

		respType := "UPDATE"
		if cmd.Action == domain.ActionInit {
			respType = "INIT"
		}
		s.publishUpdate(respType)

		s.persist(cmd.Action)
	}

	log.Println("[LOOP] Session loop stopped")
	close(s.done)
}

// executeCommand выполняет хендлер и пишет логи.
// Ошибка хендлера (битый payload, проваленная валидация) не валит сессию -
// она возвращается клиенту записью типа ERROR.
func (s *GameSession) executeCommand(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Session:  s,
		Factory:  s.Factory,
		Registry: s.Registry,
		Player:   s.Player,
		Mint:     s.Mint,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		s.AddLog(err.Error(), "ERROR")
		return
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}
}

// persist сохраняет снапшот после каждой команды.
// RESET вместо сохранения выбрасывает снапшот целиком.
func (s *GameSession) persist(action domain.ActionType) {
	if s.store == nil {
		return
	}

	if action == domain.ActionReset {
		if err := s.store.Discard(); err != nil {
			log.Printf("[SESSION] Failed to discard snapshot: %v", err)
		}
		return
	}

	if err := s.store.Save(s.Snapshot()); err != nil {
		log.Printf("[SESSION] Failed to save snapshot: %v", err)
	}
}

// --- SESSION OPS (handlers.SessionOps) ---

// MoveTo перемещает игрока и запускает проход регенерации.
// Это ЕДИНСТВЕННАЯ точка входа для любых перемещений: шаг кнопкой
// и обновление геолокации проходят через один и тот же код.
func (s *GameSession) MoveTo(pos geo.LatLng) {
	s.Player.MoveTo(pos)
	s.Regenerate()
}

// ResetAll возвращает сессию к начальному состоянию: игрок на старте,
// реестр пуст. Ранее заселенные клетки при следующем Ensure получат
// СВЕЖИЙ бросок монет.
func (s *GameSession) ResetAll() {
	s.Player = domain.NewPlayerState(s.Config.Origin())
	s.Registry.Reset()
	s.active = nil
	s.Regenerate()
}

// Regenerate выполняет spawn pass вокруг текущей клетки игрока
// и обновляет список активных тайников.
func (s *GameSession) Regenerate() {
	i, j := s.Factory.CellOf(s.Player.Pos)
	res := systems.RunSpawnPass(
		s.Registry,
		s.rng,
		domain.GridCell{I: i, J: j},
		s.Config.SpawnRadius,
		s.Config.SpawnProbability,
	)

	s.active = res.Active

	if len(res.Spawned) > 0 {
		log.Printf("[REGEN] Cell %s: %d new caches, %d active, %d total",
			res.Origin, len(res.Spawned), len(res.Active), s.Registry.Len())
	}
}

// ActiveCaches возвращает тайники в радиусе после последнего прохода.
func (s *GameSession) ActiveCaches() []*domain.CacheZone {
	return s.active
}

// --- SNAPSHOT ---

// Snapshot собирает слепок сессии для хранилища.
func (s *GameSession) Snapshot() *storage.Snapshot {
	trail := make([]geo.LatLng, len(s.Player.Trail))
	copy(trail, s.Player.Trail)

	snap := &storage.Snapshot{
		Player: storage.PlayerRecord{
			Pos:     s.Player.Pos,
			Score:   s.Player.Score,
			Carried: s.Player.Carried,
			Trail:   trail,
		},
		NextSerial: s.Mint.Issued(),
		Caches:     make(map[string]string),
	}

	s.Registry.ForEach(func(z *domain.CacheZone) {
		snap.Caches[z.Cell.String()] = z.Memento()
	})

	return snap
}

// RestoreSnapshot заливает слепок в сессию.
// Битые записи тайников пропускаются с предупреждением - частично
// восстановленная сессия лучше потерянной.
func (s *GameSession) RestoreSnapshot(snap *storage.Snapshot) {
	s.Player = &domain.PlayerState{
		Pos:     snap.Player.Pos,
		Score:   snap.Player.Score,
		Carried: snap.Player.Carried,
		Trail:   snap.Player.Trail,
	}
	if len(s.Player.Trail) == 0 {
		s.Player.Trail = []geo.LatLng{s.Player.Pos}
	}

	s.Mint.Resume(snap.NextSerial)

	// Начальный spawn pass конструктора больше не актуален:
	// реестр целиком пересобирается из снапшота.
	s.Registry.Reset()

	for key, memento := range snap.Caches {
		var cell domain.GridCell
		if _, err := fmt.Sscanf(key, "%d:%d", &cell.I, &cell.J); err != nil {
			log.Printf("[SESSION] Skipping cache record with bad key %q: %v", key, err)
			continue
		}
		if err := s.Registry.RestoreZone(cell, memento); err != nil {
			log.Printf("[SESSION] Skipping corrupt cache record %q: %v", key, err)
		}
	}

	// Активный список пересобираем по восстановленной позиции.
	s.Regenerate()

	log.Printf("[SESSION] Snapshot restored: score=%d carried=%d caches=%d",
		s.Player.Score, s.Player.Carried, s.Registry.Len())
}

// --- LOGS / BROADCAST ---

func (s *GameSession) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// publishUpdate рассылает снимок состояния всем подписчикам.
func (s *GameSession) publishUpdate(respType string) {
	state := s.BuildState(respType)
	s.Hub.Broadcast(*state)

	// Очищаем логи ПОСЛЕ рассылки: каждая запись доставляется один раз.
	s.Logs = []api.LogEntry{}
}
