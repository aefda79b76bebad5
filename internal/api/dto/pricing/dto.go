package pricing

type QuoteRequest struct {
	SellerPrice    float64  `json:"seller_price"`              // Желаемая цена продавца
	CommissionRate *float64 `json:"commission_rate,omitempty"` // Необязательная ставка комиссии
	PaymentMethod  string   `json:"payment_method"`            // CARD / TRANSFER / USSD / BANK
}

type QuoteResponse struct {
	SellerPrice        float64 `json:"seller_price"`        // Цена продавца
	PlatformCommission float64 `json:"platform_commission"` // Комиссия площадки
	PaymentFee         float64 `json:"payment_fee"`         // Провайдерский сбор с потолком
	BuyerPays          float64 `json:"buyer_pays"`          // Итог для покупателя
	SellerReceives     float64 `json:"seller_receives"`     // Итог для продавца
	CommissionRate     float64 `json:"commission_rate"`     // Примененная ставка
}

type SquadFeeRequest struct {
	Amount        float64 `json:"amount"`         // Сумма платежа
	PaymentMethod string  `json:"payment_method"` // CARD / TRANSFER / USSD / BANK
}

type SquadFeeResponse struct {
	FeePercentage float64 `json:"fee_percentage"` // Процент провайдера
	TotalFee      float64 `json:"total_fee"`      // Сбор без потолка
	CappedFee     float64 `json:"capped_fee"`     // Сбор с потолком
}
