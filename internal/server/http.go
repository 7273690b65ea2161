package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"geocoin-server/internal/engine"
	"geocoin-server/internal/version"
	"geocoin-server/pkg/logger"
)

type Server struct {
	Session *engine.GameSession
	Port    string
}

func New(session *engine.GameSession, port string) *Server {
	return &Server{
		Session: session,
		Port:    port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	// Debug Routes
	debugHandler := NewDebugHandler(s.Session)
	debugHandler.RegisterRoutes(mux)

	logger.Log.Infof("🪙  Geocoin Carrier Server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("WebSocket upgrade failed")
		return
	}

	client := NewClient(s.Session, conn)
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":  "ok",
		"clients": s.Session.Hub.SubscriberCount(),
		"caches":  s.Session.Registry.Len(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, version.Info())
}

// enableCORS разрешает кросс-доменные запросы (клиент живет на другом origin)
func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("failed to encode json response")
	}
}
