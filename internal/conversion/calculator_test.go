package conversion

import (
	"math"
	"strconv"
	"testing"
	"time"

	"fxswap/internal/domain"
	"fxswap/internal/price"

	"github.com/stretchr/testify/require"
)

func testIndex() *price.Index {
	return price.Normalize([]domain.PriceObservation{
		{Currency: "BTC", Price: 50000, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Currency: "BTC", Price: 51000, Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Currency: "ETH", Price: 3000, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
}

func TestCompute_EndToEnd(t *testing.T) {
	idx := testIndex()

	btc, _ := idx.Lookup("BTC")
	require.Equal(t, 51000.0, btc.Price)
	eth, _ := idx.Lookup("ETH")
	require.Equal(t, 3000.0, eth.Price)

	conv, err := Compute(idx, "BTC", "ETH", "2")
	require.NoError(t, err)
	require.Equal(t, 17.0, conv.Rate)
	require.Equal(t, 34.0, conv.Amount)
}

func TestCompute_ReverseDirection(t *testing.T) {
	conv, err := Compute(testIndex(), "ETH", "BTC", "17")
	require.NoError(t, err)
	require.InDelta(t, 3000.0/51000.0, conv.Rate, 1e-15)
	require.InDelta(t, 1.0, conv.Amount, 1e-12)
}

func TestCompute_SameCurrencyIsExactlyOne(t *testing.T) {
	idx := price.Normalize([]domain.PriceObservation{
		{Currency: "X", Price: 0.1 + 0.2, Date: time.Now()},
		{Currency: "Z", Price: 0, Date: time.Now()},
	})

	for _, cur := range []string{"X", "Z"} {
		conv, err := Compute(idx, cur, cur, "5")
		require.NoError(t, err)
		require.Equal(t, 1.0, conv.Rate)
		require.Equal(t, 5.0, conv.Amount)
	}
}

func TestCompute_ScaleLinear(t *testing.T) {
	idx := price.Normalize([]domain.PriceObservation{
		{Currency: "A", Price: 1.2345, Date: time.Now()},
		{Currency: "B", Price: 0.0789, Date: time.Now()},
	})

	for _, amount := range []string{"1", "3.7", "0.001", "12345.678"} {
		single, err := Compute(idx, "A", "B", amount)
		require.NoError(t, err)

		v, err := ParseAmount(amount)
		require.NoError(t, err)
		doubled, err := Compute(idx, "A", "B", strconv.FormatFloat(2*v, 'f', -1, 64))
		require.NoError(t, err)

		require.Equal(t, single.Rate, doubled.Rate)
		require.Equal(t, 2*single.Amount, doubled.Amount)
	}
}

func TestCompute_Unavailable(t *testing.T) {
	idx := testIndex()

	_, err := Compute(idx, "DOGE", "ETH", "1")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)

	_, err = Compute(idx, "BTC", "doge", "1")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)

	_, err = Compute(idx, "btc", "ETH", "1")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestCompute_NotLoaded(t *testing.T) {
	_, err := Compute(nil, "BTC", "ETH", "1")
	require.ErrorIs(t, err, domain.ErrPricesNotLoaded)

	_, err = Compute(price.Normalize(nil), "BTC", "ETH", "1")
	require.ErrorIs(t, err, domain.ErrPricesNotLoaded)
}

func TestCompute_InvalidAmount(t *testing.T) {
	idx := testIndex()
	for _, amount := range []string{"", ".", "0", "0.000", "-5", "abc", "1.2.3", "NaN", "Inf", "1e400"} {
		_, err := Compute(idx, "BTC", "ETH", amount)
		require.ErrorIs(t, err, domain.ErrInvalidAmount, amount)
	}
}

func TestParseAmount_OnlyPlainDecimals(t *testing.T) {
	for _, text := range []string{"1e3", "0x1p4", "1_0", "Inf", "+5", " 2"} {
		_, err := ParseAmount(text)
		require.ErrorIs(t, err, domain.ErrInvalidAmount, text)

		_, err = Compute(testIndex(), "BTC", "ETH", text)
		require.ErrorIs(t, err, domain.ErrInvalidAmount, text)
	}

	for text, want := range map[string]float64{"10": 10, "1.": 1, ".5": 0.5, "007.25": 7.25} {
		v, err := ParseAmount(text)
		require.NoError(t, err, text)
		require.Equal(t, want, v)
	}
}

func TestCompute_UnavailableBeforeInvalidAmount(t *testing.T) {
	_, err := Compute(testIndex(), "BTC", "DOGE", "")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestCompute_NonPositivePriceDoesNotLeakInfinity(t *testing.T) {
	idx := price.Normalize([]domain.PriceObservation{
		{Currency: "OK", Price: 10, Date: time.Now()},
		{Currency: "ZERO", Price: 0, Date: time.Now()},
		{Currency: "NEG", Price: -1, Date: time.Now()},
		{Currency: "INF", Price: math.Inf(1), Date: time.Now()},
	})

	for _, pair := range [][2]string{{"OK", "ZERO"}, {"ZERO", "OK"}, {"OK", "NEG"}, {"INF", "OK"}} {
		conv, err := Compute(idx, pair[0], pair[1], "1")
		require.ErrorIs(t, err, domain.ErrInvalidAmount, pair)
		require.Equal(t, Conversion{}, conv)
	}
}

func TestCompute_OverflowingResultIsInvalid(t *testing.T) {
	idx := price.Normalize([]domain.PriceObservation{
		{Currency: "BIG", Price: 1e300, Date: time.Now()},
		{Currency: "TINY", Price: 1e-10, Date: time.Now()},
	})

	_, err := Compute(idx, "BIG", "TINY", "1000000")
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCompute_Deterministic(t *testing.T) {
	idx := testIndex()
	first, err := Compute(idx, "ETH", "BTC", "3.3")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Compute(idx, "ETH", "BTC", "3.3")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
