package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Server отдаёт liveness-страницу для хостинга.
// Платформа опрашивает корень, чтобы не усыплять процесс.
type Server struct {
	srv *http.Server
	log zerolog.Logger
}

// NewServer создаёт liveness-сервер на указанном порту
func NewServer(port string, log zerolog.Logger) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("✅ YI Courses Bot is alive"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	return &Server{
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Start запускает сервер и блокируется до его остановки
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.srv.Addr).Msg("liveness-сервер запущен")

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop останавливает сервер
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
