package bingo

import (
	dto "campus_market/internal/api/dto/bingo"
	"campus_market/internal/converter"
	"campus_market/internal/service"
	"campus_market/pkg/req"
	"campus_market/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.BingoService
}

type Handler struct {
	serv service.BingoService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Start(r.Context(), converter.ToBingoStart(payload))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoStartResponse(*result))
}

func (h *Handler) Call(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Call(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoCallResponse(*result))
}

func (h *Handler) Mark(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.MarkRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Mark(r.Context(), payload.Phrase)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoMarkResponse(*result))
}

func (h *Handler) Practice(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PracticeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.serv.Practice(payload.Marks)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoPracticeResponse(*result))
}

func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Claim(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBingoClaimResponse(*result))
}
