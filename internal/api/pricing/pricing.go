package pricing

import (
	dto "campus_market/internal/api/dto/pricing"
	"campus_market/internal/converter"
	pricingEngine "campus_market/internal/pricing"
	"campus_market/internal/service"
	"campus_market/pkg/req"
	"campus_market/pkg/resp"
	"errors"
	"net/http"
)

type HandlerDeps struct {
	Serv service.PricingService
}

type Handler struct {
	serv service.PricingService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.QuoteRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Quote(payload.SellerPrice, payload.CommissionRate, payload.PaymentMethod)
	if err != nil {
		writePricingError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToQuoteResponse(*result))
}

func (h *Handler) SquadFee(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SquadFeeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.SquadFee(payload.Amount, payload.PaymentMethod)
	if err != nil {
		writePricingError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSquadFeeResponse(*result))
}

// Ошибки валидации движка - ошибки клиента, умолчаний не подставляем
func writePricingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pricingEngine.ErrUnknownMethod),
		errors.Is(err, pricingEngine.ErrInvalidPrice),
		errors.Is(err, pricingEngine.ErrInvalidRate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
