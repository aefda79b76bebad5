package stats

import (
	"campus_market/internal/converter"
	"campus_market/internal/service"
	"campus_market/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.StatsService
}

type Handler struct {
	serv service.StatsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Snapshot()))
}
