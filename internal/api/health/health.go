package health

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"kingdom_backend/pkg/resp"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.WithError(err).Warn("health check: database unavailable")
		resp.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
