package wheel

import (
	dto "campus_market/internal/api/dto/wheel"
	"campus_market/internal/converter"
	game "campus_market/internal/game/wheel"
	"campus_market/internal/service"
	"campus_market/pkg/req"
	"campus_market/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToWheelSpin(payload))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelSpinResponse(*result))
}

// Segments отдает раскладку колеса для отрисовки.
// Веса выбора не отдаем - клиенту они не нужны
func (h *Handler) Segments(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelSegmentsResponse(game.Segments()))
}
