package wallet

import (
	dto "campus_market/internal/api/dto/wallet"
	"campus_market/internal/converter"
	"campus_market/internal/service"
	"campus_market/pkg/req"
	"campus_market/pkg/resp"
	"net/http"
	"strconv"
)

type HandlerDeps struct {
	Serv service.WalletService
}

type Handler struct {
	serv service.WalletService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := h.serv.Deposit(r.Context(), payload.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(balance))
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := h.serv.Withdraw(r.Context(), payload.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(balance))
}

func (h *Handler) Hold(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.HoldRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Hold(r.Context(), payload.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHoldResponse(*result))
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.Balance(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(balance))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	// Лимит из query, сервис подставит умолчание
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rounds, err := h.serv.History(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(rounds))
}
