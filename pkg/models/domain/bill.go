package domain

import "github.com/shopspring/decimal"

type AdjustmentKind string

const (
	AdjustmentCharge   AdjustmentKind = "charge"
	AdjustmentDiscount AdjustmentKind = "discount"
)

// Item is one purchased product shared by its participants.
type Item struct {
	Name         string
	Participants []string // duplicates kept, each counts as one share
	Price        decimal.Decimal
}

// PerPerson is the raw share of the item price for one listed participant.
func (i Item) PerPerson() decimal.Decimal {
	return i.Price.Div(decimal.NewFromInt(int64(len(i.Participants))))
}

// Adjustment is either an absolute amount or a percentage of a base.
type Adjustment struct {
	Value      decimal.Decimal
	Percentage bool
}

func Amount(v decimal.Decimal) *Adjustment {
	return &Adjustment{Value: v}
}

func Percentage(v decimal.Decimal) *Adjustment {
	return &Adjustment{Value: v, Percentage: true}
}

// Resolve returns the absolute amount of the adjustment against base.
func (a *Adjustment) Resolve(base decimal.Decimal) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	if a.Percentage {
		return base.Mul(a.Value).Div(decimal.NewFromInt(100))
	}
	return a.Value
}

func (a *Adjustment) IsZero() bool {
	return a == nil || a.Value.IsZero()
}

type Bill struct {
	Items    []Item
	Charge   *Adjustment
	Discount *Adjustment
}

// Subtotal is the sum of all item prices.
func (b Bill) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.Price)
	}
	return total
}

// Participants lists the distinct participants in order of first appearance.
func (b Bill) Participants() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range b.Items {
		for _, p := range item.Participants {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// Share is the breakdown of what one participant owes.
type Share struct {
	Participant string
	Raw         decimal.Decimal
	Charge      decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal // rounded to cents
}

type AllocationResult struct {
	Subtotal decimal.Decimal
	Charge   decimal.Decimal // resolved absolute amount
	Discount decimal.Decimal // resolved absolute amount
	Shares   []Share         // first-appearance order
}

// Totals maps each participant to the rounded amount owed.
func (r *AllocationResult) Totals() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(r.Shares))
	for _, s := range r.Shares {
		out[s.Participant] = s.Total
	}
	return out
}

// Total is the sum of every participant's rounded total.
func (r *AllocationResult) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range r.Shares {
		sum = sum.Add(s.Total)
	}
	return sum
}
