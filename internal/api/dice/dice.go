package dice

import (
	dto "campus_market/internal/api/dto/dice"
	"campus_market/internal/converter"
	game "campus_market/internal/game/dice"
	"campus_market/internal/service"
	"campus_market/pkg/req"
	"campus_market/pkg/resp"
	"errors"
	"net/http"
)

type HandlerDeps struct {
	Serv service.DiceService
}

type Handler struct {
	serv service.DiceService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Play(r.Context(), converter.ToDicePlay(payload))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDicePlayResponse(*result))
}

func (h *Handler) Practice(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PracticeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Practice(payload.Dice)
	if err != nil {
		// Кривая рука - ошибка клиента
		if errors.Is(err, game.ErrInvalidHand) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDicePracticeResponse(*result))
}
