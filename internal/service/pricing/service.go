package pricing

import (
	"campus_market/internal/config"
	"campus_market/internal/pricing"
	"campus_market/internal/service"

	"github.com/shopspring/decimal"
)

type serv struct {
	pricingCfg config.PricingConfig
}

// NewPricingService Создать сервис расчета цен
func NewPricingService(pricingCfg config.PricingConfig) service.PricingService {
	return &serv{
		pricingCfg: pricingCfg,
	}
}

// Quote считает раскладку цены от желаемой цены продавца.
// Если ставка комиссии не передана, берется из конфига
func (s *serv) Quote(sellerPrice float64, commissionRate *float64, method string) (*pricing.Breakdown, error) {
	rate := s.pricingCfg.CommissionRate()
	if commissionRate != nil {
		rate = *commissionRate
	}

	breakdown, err := pricing.FromSellerPrice(
		decimal.NewFromFloat(sellerPrice),
		decimal.NewFromFloat(rate),
		pricing.PaymentMethod(method),
	)
	if err != nil {
		return nil, err
	}

	return &breakdown, nil
}

// SquadFee считает провайдерскую комиссию для суммы платежа
func (s *serv) SquadFee(amount float64, method string) (*pricing.SquadFee, error) {
	fee, err := pricing.CalculateSquadFee(
		decimal.NewFromFloat(amount),
		pricing.PaymentMethod(method),
	)
	if err != nil {
		return nil, err
	}

	return &fee, nil
}
