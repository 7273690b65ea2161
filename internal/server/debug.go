package server

import (
	"net/http"

	"geocoin-server/internal/domain"
	"geocoin-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию сессии.
// Читает состояние мимо командного цикла, поэтому годится только для
// отладки, не для продакшен-клиентов.
type DebugHandler struct {
	Session *engine.GameSession
}

func NewDebugHandler(s *engine.GameSession) *DebugHandler {
	return &DebugHandler{Session: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/caches", h.handleDumpCaches)
	mux.HandleFunc("/debug/player", h.handleDumpPlayer)
	mux.HandleFunc("/debug/stats", h.handleStats)
}

// /debug/caches - дамп всех зарегистрированных тайников с их memento
func (h *DebugHandler) handleDumpCaches(w http.ResponseWriter, r *http.Request) {
	type CacheSummary struct {
		Cell      string `json:"cell"`
		CoinCount int    `json:"coin_count"`
		Memento   string `json:"memento"`
	}

	var summary []CacheSummary
	h.Session.Registry.ForEach(func(z *domain.CacheZone) {
		summary = append(summary, CacheSummary{
			Cell:      z.Cell.String(),
			CoinCount: z.CoinCount(),
			Memento:   z.Memento(),
		})
	})

	writeJSON(w, summary)
}

// /debug/player - текущее состояние игрока (включая весь след)
func (h *DebugHandler) handleDumpPlayer(w http.ResponseWriter, r *http.Request) {
	p := h.Session.Player
	writeJSON(w, map[string]interface{}{
		"pos":     p.Pos,
		"score":   p.Score,
		"carried": p.Carried,
		"trail":   p.Trail,
	})
}

// /debug/stats - размеры внутренних структур
func (h *DebugHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"caches":       h.Session.Registry.Len(),
		"coins_minted": h.Session.Mint.Issued(),
		"coords":       h.Session.Factory.Size(),
		"clients":      h.Session.Hub.SubscriberCount(),
	})
}
