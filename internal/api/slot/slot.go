package slot

import (
	"errors"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	dto "kingdom_backend/internal/api/dto/slot"
	"kingdom_backend/internal/converter"
	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/middleware"
	"kingdom_backend/internal/model"
	"kingdom_backend/internal/service"
	"kingdom_backend/pkg/req"
	"kingdom_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSlotSpin(payload))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.State(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*state))
}

// History ?limit=N, по умолчанию 20, максимум 100
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	records, err := h.serv.History(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

func (h *Handler) Tiers(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTierResponses(h.serv.Tiers()))
}

func (h *Handler) Symbols(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSymbolResponses(h.serv.Symbols()))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNoPlayerID):
		resp.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, model.ErrNotEnoughSpins):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrInvalidArgument) && !errors.Is(err, service.ErrRewardCalculation):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		entry := log.WithError(err).WithField("path", r.URL.Path)
		if id, ok := middleware.PlayerIDFromContext(r.Context()); ok {
			entry = entry.WithField("player_id", id)
		}
		entry.Error("slot request failed")
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
