package allocation

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/billsplit/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(name, price string, participants ...string) domain.Item {
	return domain.Item{Name: name, Participants: participants, Price: dec(price)}
}

func dinnerBill() domain.Bill {
	return domain.Bill{
		Items: []domain.Item{
			item("Pizza", "18.65", "Keerthana"),
			item("Milk", "6.94", "Yakgna", "Rohan", "Keerthana"),
			item("Salt", "1.85", "Yakgna", "Rohan", "Keerthana"),
		},
		Charge:   domain.Amount(dec("2.50")),
		Discount: domain.Percentage(dec("20")),
	}
}

func totals(result *domain.AllocationResult) map[string]string {
	out := make(map[string]string)
	for name, total := range result.Totals() {
		out[name] = total.StringFixed(2)
	}
	return out
}

func TestAllocate_DiscountOffSubtotal(t *testing.T) {
	result, err := NewEngine(Options{}).Allocate(context.Background(), dinnerBill())
	require.NoError(t, err)

	assert.Equal(t, "27.44", result.Subtotal.String())
	assert.Equal(t, "2.5", result.Charge.String())
	assert.Equal(t, "5.488", result.Discount.String())
	assert.Equal(t, map[string]string{
		"Keerthana": "19.23",
		"Rohan":     "2.61",
		"Yakgna":    "2.61",
	}, totals(result))
}

func TestAllocate_DiscountOffChargedTotal(t *testing.T) {
	result, err := NewEngine(Options{DiscountBase: BaseCharged}).Allocate(context.Background(), dinnerBill())
	require.NoError(t, err)

	assert.Equal(t, "5.99", result.Discount.String())
	assert.Equal(t, map[string]string{
		"Keerthana": "18.84",
		"Rohan":     "2.56",
		"Yakgna":    "2.55",
	}, totals(result))
}

func TestAllocate_SharesInFirstAppearanceOrder(t *testing.T) {
	result, err := NewEngine(Options{}).Allocate(context.Background(), dinnerBill())
	require.NoError(t, err)

	var names []string
	for _, s := range result.Shares {
		names = append(names, s.Participant)
	}
	assert.Equal(t, []string{"Keerthana", "Yakgna", "Rohan"}, names)
	assert.Equal(t, "21.58", result.Shares[0].Raw.Round(10).String())
}

func TestAllocate_TotalMatchesAdjustedSubtotal(t *testing.T) {
	bills := []domain.Bill{
		dinnerBill(),
		{
			Items: []domain.Item{
				item("A", "10.01", "x", "y", "z"),
				item("B", "7.77", "y", "z"),
				item("C", "0.05", "x", "z", "z"),
			},
			Charge:   domain.Percentage(dec("12.5")),
			Discount: domain.Amount(dec("3.33")),
		},
		{
			Items:  []domain.Item{item("A", "1", "p", "q", "r")},
			Charge: domain.Amount(dec("-0.10")),
		},
	}

	for _, bill := range bills {
		for _, base := range []DiscountBase{BaseSubtotal, BaseCharged} {
			result, err := NewEngine(Options{DiscountBase: base}).Allocate(context.Background(), bill)
			require.NoError(t, err)

			want := result.Subtotal.Add(result.Charge).Sub(result.Discount)
			diff := result.Total().Sub(want).Abs()
			assert.True(t, diff.LessThanOrEqual(dec("0.01")), "total %s, want %s", result.Total(), want)
		}
	}
}

func TestRawShares_SumToItemPrice(t *testing.T) {
	for _, it := range dinnerBill().Items {
		raw := RawShares(domain.Bill{Items: []domain.Item{it}})
		sum := decimal.Zero
		for _, v := range raw {
			sum = sum.Add(v)
		}
		assert.True(t, sum.Sub(it.Price).Abs().LessThan(dec("0.000000001")), "%s: %s", it.Name, sum)
	}
}

func TestRawShares_DuplicateParticipant(t *testing.T) {
	raw := RawShares(domain.Bill{Items: []domain.Item{item("Tea", "3", "x", "x", "y")}})

	assert.Equal(t, "2", raw["x"].String())
	assert.Equal(t, "1", raw["y"].String())
}

func TestAllocate_Idempotent(t *testing.T) {
	engine := NewEngine(Options{})
	bill := dinnerBill()

	first, err := engine.Allocate(context.Background(), bill)
	require.NoError(t, err)
	second, err := engine.Allocate(context.Background(), bill)
	require.NoError(t, err)

	assert.Equal(t, totals(first), totals(second))
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
}

func TestAllocate_SingleParticipant(t *testing.T) {
	bill := domain.Bill{Items: []domain.Item{item("Pizza", "18.65", "Keerthana")}}

	result, err := NewEngine(Options{}).Allocate(context.Background(), bill)
	require.NoError(t, err)

	require.Len(t, result.Shares, 1)
	assert.True(t, result.Shares[0].Total.Equal(dec("18.65")))
}

func TestAllocate_ZeroSubtotal(t *testing.T) {
	items := []domain.Item{item("Water", "0", "a", "b")}

	tests := []struct {
		name string
		bill domain.Bill
	}{
		{name: "percentage charge", bill: domain.Bill{Items: items, Charge: domain.Percentage(dec("10"))}},
		{name: "percentage discount", bill: domain.Bill{Items: items, Discount: domain.Percentage(dec("10"))}},
		{name: "amount charge", bill: domain.Bill{Items: items, Charge: domain.Amount(dec("1"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(Options{}).Allocate(context.Background(), tt.bill)
			var zero *domain.ZeroSubtotalError
			assert.True(t, errors.As(err, &zero), "got %v", err)
		})
	}
}

func TestAllocate_ZeroSubtotalWithoutAdjustments(t *testing.T) {
	bill := domain.Bill{Items: []domain.Item{item("Water", "0", "a", "b")}}

	result, err := NewEngine(Options{}).Allocate(context.Background(), bill)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "0.00", "b": "0.00"}, totals(result))
}

func TestAllocate_NegativeChargeAndAmountDiscount(t *testing.T) {
	bill := domain.Bill{
		Items: []domain.Item{
			item("Steak", "30", "a"),
			item("Salad", "10", "b"),
		},
		Charge:   domain.Amount(dec("-4")),
		Discount: domain.Amount(dec("8")),
	}

	result, err := NewEngine(Options{DiscountBase: BaseCharged}).Allocate(context.Background(), bill)
	require.NoError(t, err)

	// a holds 75% of the subtotal, b 25%
	assert.Equal(t, map[string]string{"a": "21.00", "b": "7.00"}, totals(result))
	assert.Equal(t, "-3", result.Shares[0].Charge.String())
	assert.Equal(t, "6", result.Shares[0].Discount.String())
}

func TestAllocate_DiscountOverHundredPercent(t *testing.T) {
	bill := domain.Bill{
		Items:    []domain.Item{item("Tea", "10", "a", "b")},
		Discount: domain.Percentage(dec("150")),
	}

	result, err := NewEngine(Options{}).Allocate(context.Background(), bill)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "-2.50", "b": "-2.50"}, totals(result))
}

func TestParseDiscountBase(t *testing.T) {
	base, err := ParseDiscountBase("")
	require.NoError(t, err)
	assert.Equal(t, BaseSubtotal, base)

	base, err = ParseDiscountBase("charged")
	require.NoError(t, err)
	assert.Equal(t, BaseCharged, base)

	_, err = ParseDiscountBase("total")
	assert.Error(t, err)
}
