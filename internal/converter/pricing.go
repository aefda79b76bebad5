package converter

import (
	dto "campus_market/internal/api/dto/pricing"
	"campus_market/internal/pricing"
)

func ToQuoteResponse(b pricing.Breakdown) dto.QuoteResponse {
	return dto.QuoteResponse{
		SellerPrice:        b.SellerPrice.InexactFloat64(),
		PlatformCommission: b.PlatformCommission.InexactFloat64(),
		PaymentFee:         b.PaymentFee.InexactFloat64(),
		BuyerPays:          b.BuyerPays.InexactFloat64(),
		SellerReceives:     b.SellerReceives.InexactFloat64(),
		CommissionRate:     b.CommissionRate.InexactFloat64(),
	}
}

func ToSquadFeeResponse(f pricing.SquadFee) dto.SquadFeeResponse {
	return dto.SquadFeeResponse{
		FeePercentage: f.FeePercentage.InexactFloat64(),
		TotalFee:      f.TotalFee.InexactFloat64(),
		CappedFee:     f.CappedFee.InexactFloat64(),
	}
}
