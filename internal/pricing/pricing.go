package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// PaymentMethod - способ оплаты покупателя
type PaymentMethod string

const (
	MethodCard     PaymentMethod = "CARD"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodUSSD     PaymentMethod = "USSD"
	MethodBank     PaymentMethod = "BANK"
)

var (
	// ErrUnknownMethod - неизвестный способ оплаты, умолчаний не подставляем
	ErrUnknownMethod = errors.New("unknown payment method")
	// ErrInvalidPrice - цена должна быть положительной
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrInvalidRate - ставка комиссии вне [0,1)
	ErrInvalidRate = errors.New("invalid commission rate")
)

// DefaultCommissionRate - комиссия площадки по умолчанию, 10%
var DefaultCommissionRate = decimal.NewFromFloat(0.10)

// securityDepositRate - доля залога от суммы сделки, 5%
var securityDepositRate = decimal.NewFromFloat(0.05)

// feeRule - правило комиссии платежного провайдера: процент с жестким потолком
type feeRule struct {
	percentage decimal.Decimal
	cap        decimal.Decimal
}

// feeTable - таблица провайдерских комиссий по способам оплаты.
// CARD/USSD 1.2% с потолком 1500, TRANSFER/BANK 0.25% с потолком 1000
var feeTable = map[PaymentMethod]feeRule{
	MethodCard:     {percentage: decimal.NewFromFloat(0.012), cap: decimal.NewFromInt(1500)},
	MethodUSSD:     {percentage: decimal.NewFromFloat(0.012), cap: decimal.NewFromInt(1500)},
	MethodTransfer: {percentage: decimal.NewFromFloat(0.0025), cap: decimal.NewFromInt(1000)},
	MethodBank:     {percentage: decimal.NewFromFloat(0.0025), cap: decimal.NewFromInt(1000)},
}

// Breakdown - полная раскладка цены для покупателя и продавца
type Breakdown struct {
	SellerPrice        decimal.Decimal
	PlatformCommission decimal.Decimal
	PaymentFee         decimal.Decimal
	BuyerPays          decimal.Decimal
	SellerReceives     decimal.Decimal
	CommissionRate     decimal.Decimal
}

// SquadFee - провайдерская комиссия: процент, сырая сумма и сумма с потолком
type SquadFee struct {
	FeePercentage decimal.Decimal
	TotalFee      decimal.Decimal
	CappedFee     decimal.Decimal
}

// FromSellerPrice считает раскладку от желаемой цены продавца.
// Каждое слагаемое округляется до 2 знаков до суммирования -
// менять порядок нельзя, сверка с леджером разойдется на копейки
func FromSellerPrice(sellerPrice, commissionRate decimal.Decimal, method PaymentMethod) (Breakdown, error) {
	if !sellerPrice.IsPositive() {
		return Breakdown{}, ErrInvalidPrice
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Breakdown{}, ErrInvalidRate
	}

	rule, ok := feeTable[method]
	if !ok {
		return Breakdown{}, ErrUnknownMethod
	}

	commission := sellerPrice.Mul(commissionRate).Round(2)

	rawFee := sellerPrice.Mul(rule.percentage)
	paymentFee := decimal.Min(rawFee, rule.cap).Round(2)

	buyerPays := sellerPrice.Add(commission).Add(paymentFee).Round(2)
	sellerReceives := sellerPrice.Sub(commission).Round(2)

	return Breakdown{
		SellerPrice:        sellerPrice,
		PlatformCommission: commission,
		PaymentFee:         paymentFee,
		BuyerPays:          buyerPays,
		SellerReceives:     sellerReceives,
		CommissionRate:     commissionRate,
	}, nil
}

// CalculateSquadFee считает провайдерскую комиссию для суммы платежа
func CalculateSquadFee(amount decimal.Decimal, method PaymentMethod) (SquadFee, error) {
	if !amount.IsPositive() {
		return SquadFee{}, ErrInvalidPrice
	}

	rule, ok := feeTable[method]
	if !ok {
		return SquadFee{}, ErrUnknownMethod
	}

	rawFee := amount.Mul(rule.percentage)

	return SquadFee{
		FeePercentage: rule.percentage,
		TotalFee:      rawFee.Round(2),
		CappedFee:     decimal.Min(rawFee, rule.cap).Round(2),
	}, nil
}

// SecurityDeposit считает залог: 5% от суммы с округлением до целого
func SecurityDeposit(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(securityDepositRate).Round(0)
}

// IsWithdrawalAllowed проверяет правило вывода средств
func IsWithdrawalAllowed(balance, amount int) bool {
	return balance >= amount && amount > 0
}
