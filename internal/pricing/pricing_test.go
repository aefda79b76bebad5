package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFromSellerPriceCard(t *testing.T) {
	b, err := FromSellerPrice(dec("1000"), dec("0.10"), MethodCard)
	require.NoError(t, err)

	assert.True(t, b.PlatformCommission.Equal(dec("100")), "commission = %s", b.PlatformCommission)
	assert.True(t, b.PaymentFee.Equal(dec("12")), "fee = %s", b.PaymentFee)
	assert.True(t, b.BuyerPays.Equal(dec("1112")), "buyer pays = %s", b.BuyerPays)
	assert.True(t, b.SellerReceives.Equal(dec("900")), "seller receives = %s", b.SellerReceives)
}

func TestFromSellerPriceTransferUnderCap(t *testing.T) {
	// 0.25% от 200000 = 500, ниже потолка 1000 - потолок не срабатывает
	b, err := FromSellerPrice(dec("200000"), dec("0.10"), MethodTransfer)
	require.NoError(t, err)

	assert.True(t, b.PaymentFee.Equal(dec("500")), "fee = %s", b.PaymentFee)
	assert.True(t, b.BuyerPays.Equal(dec("220500")), "buyer pays = %s", b.BuyerPays)
	assert.True(t, b.SellerReceives.Equal(dec("180000")))
}

func TestFeeCapBinds(t *testing.T) {
	// TRANSFER: потолок начинает работать выше 400000
	b, err := FromSellerPrice(dec("500000"), dec("0.10"), MethodTransfer)
	require.NoError(t, err)
	assert.True(t, b.PaymentFee.Equal(dec("1000")), "fee = %s", b.PaymentFee)

	// CARD: потолок начинает работать выше 125000
	b, err = FromSellerPrice(dec("200000"), dec("0.10"), MethodCard)
	require.NoError(t, err)
	assert.True(t, b.PaymentFee.Equal(dec("1500")), "fee = %s", b.PaymentFee)
}

func TestFromSellerPriceRounding(t *testing.T) {
	// Каждое слагаемое округляется до суммирования:
	// комиссия 99.99*0.1=10.00 (9.999 вверх), сбор 99.99*0.012=1.20
	b, err := FromSellerPrice(dec("99.99"), dec("0.10"), MethodUSSD)
	require.NoError(t, err)

	assert.True(t, b.PlatformCommission.Equal(dec("10.00")), "commission = %s", b.PlatformCommission)
	assert.True(t, b.PaymentFee.Equal(dec("1.20")), "fee = %s", b.PaymentFee)
	assert.True(t, b.BuyerPays.Equal(dec("111.19")), "buyer pays = %s", b.BuyerPays)
}

func TestFromSellerPriceErrors(t *testing.T) {
	_, err := FromSellerPrice(dec("0"), dec("0.10"), MethodCard)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = FromSellerPrice(dec("-5"), dec("0.10"), MethodCard)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = FromSellerPrice(dec("100"), dec("0.10"), PaymentMethod("CRYPTO"))
	assert.ErrorIs(t, err, ErrUnknownMethod)

	_, err = FromSellerPrice(dec("100"), dec("1.5"), MethodCard)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestCalculateSquadFee(t *testing.T) {
	fee, err := CalculateSquadFee(dec("200000"), MethodCard)
	require.NoError(t, err)

	assert.True(t, fee.FeePercentage.Equal(dec("0.012")))
	assert.True(t, fee.TotalFee.Equal(dec("2400")), "total = %s", fee.TotalFee)
	assert.True(t, fee.CappedFee.Equal(dec("1500")), "capped = %s", fee.CappedFee)
}

func TestCalculateSquadFeeUnknownMethod(t *testing.T) {
	_, err := CalculateSquadFee(dec("100"), PaymentMethod("WALLET"))
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestSecurityDeposit(t *testing.T) {
	assert.True(t, SecurityDeposit(dec("1000")).Equal(dec("50")))
	// Округление половины вверх до целого
	assert.True(t, SecurityDeposit(dec("1010")).Equal(dec("51")), "deposit = %s", SecurityDeposit(dec("1010")))
	assert.True(t, SecurityDeposit(dec("30")).Equal(dec("2")), "deposit = %s", SecurityDeposit(dec("30")))
}

func TestIsWithdrawalAllowed(t *testing.T) {
	assert.True(t, IsWithdrawalAllowed(1000, 500))
	assert.True(t, IsWithdrawalAllowed(500, 500))
	assert.False(t, IsWithdrawalAllowed(400, 500))
	assert.False(t, IsWithdrawalAllowed(1000, 0))
	assert.False(t, IsWithdrawalAllowed(1000, -5))
}
