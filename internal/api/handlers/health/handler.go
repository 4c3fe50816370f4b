package health

import (
	"context"
	"net/http"

	"github.com/GritX-web/GritX/internal/api/handlers"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /health
// Возвращает 503, пока база данных недоступна, чтобы балансировщик выводил
// инстанс из ротации.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Warn("GET /health - Database unreachable: %v", err)
		handlers.RespondUnavailable(w, "storage unavailable")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
