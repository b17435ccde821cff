package domain_test

import (
	"testing"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() domain.ExchangeRates {
	return domain.NewExchangeRates(domain.PLN, map[domain.Currency]decimal.Decimal{
		domain.PLN: decimal.NewFromInt(1),
		domain.USD: decimal.RequireFromString("0.27"),
		domain.EUR: decimal.RequireFromString("0.24"),
		domain.UAH: decimal.RequireFromString("11.08"),
	})
}

func TestConvert_SameCurrencyIsIdentity(t *testing.T) {
	rates := testRates()
	amount := decimal.RequireFromString("123.45")

	got, err := rates.Convert(amount, domain.USD, domain.USD)

	require.NoError(t, err)
	assert.True(t, got.Equal(amount), "got %s", got)
}

func TestConvert_ThroughBase(t *testing.T) {
	rates := testRates()

	// 27 USD -> 100 base units -> 24 EUR.
	got, err := rates.Convert(decimal.NewFromInt(27), domain.USD, domain.EUR)

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(24)), "got %s", got)
}

func TestConvert_RoundTripPreservesAmount(t *testing.T) {
	rates := testRates()
	amount := decimal.RequireFromString("250.75")

	eur, err := rates.Convert(amount, domain.USD, domain.EUR)
	require.NoError(t, err)
	back, err := rates.Convert(eur, domain.EUR, domain.USD)
	require.NoError(t, err)

	// Division precision can leave dust far past the second decimal.
	assert.True(t, back.Sub(amount).Abs().LessThan(decimal.RequireFromString("0.000001")), "got %s", back)
}

func TestConvert_MissingRate(t *testing.T) {
	rates := testRates()

	_, err := rates.Convert(decimal.NewFromInt(10), domain.Currency("GBP"), domain.PLN)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingRate)

	_, err = rates.Convert(decimal.NewFromInt(10), domain.PLN, domain.Currency("GBP"))
	assert.ErrorIs(t, err, apperrors.ErrMissingRate)
}

func TestNewExchangeRates_CopiesInput(t *testing.T) {
	input := map[domain.Currency]decimal.Decimal{
		domain.PLN: decimal.NewFromInt(1),
		domain.USD: decimal.RequireFromString("0.27"),
	}
	rates := domain.NewExchangeRates(domain.PLN, input)

	delete(input, domain.USD)

	assert.True(t, rates.Has(domain.USD))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "zł", domain.PLN.Symbol())
	assert.Equal(t, "$", domain.USD.Symbol())
	assert.Equal(t, "GBP", domain.Currency("GBP").Symbol())
}
