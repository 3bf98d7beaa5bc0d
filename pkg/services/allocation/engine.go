package allocation

import (
	"context"
	"fmt"
	"slices"

	"github.com/de-tools/billsplit/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DiscountBase selects what a percentage discount is computed from.
type DiscountBase string

const (
	// BaseSubtotal computes the discount off the item subtotal, the same
	// base as the charge.
	BaseSubtotal DiscountBase = "subtotal"
	// BaseCharged computes the discount off subtotal plus charge and rounds
	// it to cents before distribution.
	BaseCharged DiscountBase = "charged"
)

func ParseDiscountBase(s string) (DiscountBase, error) {
	switch DiscountBase(s) {
	case BaseSubtotal, BaseCharged:
		return DiscountBase(s), nil
	case "":
		return BaseSubtotal, nil
	}
	return "", fmt.Errorf("unknown discount base %q (want %q or %q)", s, BaseSubtotal, BaseCharged)
}

type Options struct {
	DiscountBase DiscountBase
}

type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	if opts.DiscountBase == "" {
		opts.DiscountBase = BaseSubtotal
	}
	return &Engine{opts: opts}
}

// Allocate splits the bill between its participants. Each participant pays
// their raw item shares plus the charge and minus the discount, both spread
// in proportion to raw share of the subtotal. Only the final totals are
// rounded to cents, and the rounding preserves the bill total.
func (e *Engine) Allocate(ctx context.Context, bill domain.Bill) (*domain.AllocationResult, error) {
	subtotal := bill.Subtotal()
	participants := bill.Participants()
	raw := RawShares(bill)

	charge := bill.Charge.Resolve(subtotal)
	discount := e.resolveDiscount(bill.Discount, subtotal, charge)

	if (bill.Charge != nil || bill.Discount != nil) && subtotal.IsZero() {
		return nil, &domain.ZeroSubtotalError{}
	}

	shares := make([]domain.Share, len(participants))
	exact := make(map[string]decimal.Decimal, len(participants))
	for i, p := range participants {
		s := domain.Share{Participant: p, Raw: raw[p]}
		if !subtotal.IsZero() {
			s.Charge = charge.Mul(s.Raw).Div(subtotal)
			s.Discount = discount.Mul(s.Raw).Div(subtotal)
		}
		exact[p] = s.Raw.Add(s.Charge).Sub(s.Discount)
		shares[i] = s
	}

	rounded := roundPreservingTotal(exact)
	for i := range shares {
		shares[i].Total = rounded[shares[i].Participant]
	}

	zerolog.Ctx(ctx).Debug().
		Str("subtotal", subtotal.String()).
		Str("charge", charge.String()).
		Str("discount", discount.String()).
		Int("participants", len(participants)).
		Msg("allocated bill")

	return &domain.AllocationResult{
		Subtotal: subtotal,
		Charge:   charge,
		Discount: discount,
		Shares:   shares,
	}, nil
}

func (e *Engine) resolveDiscount(adj *domain.Adjustment, subtotal, charge decimal.Decimal) decimal.Decimal {
	if adj == nil {
		return decimal.Zero
	}
	if e.opts.DiscountBase == BaseCharged && adj.Percentage {
		return adj.Resolve(subtotal.Add(charge)).Round(2)
	}
	return adj.Resolve(subtotal)
}

// RawShares sums each participant's unadjusted portion of every item.
// A participant listed twice on an item takes two portions.
func RawShares(bill domain.Bill) map[string]decimal.Decimal {
	raw := make(map[string]decimal.Decimal)
	for _, item := range bill.Items {
		per := item.PerPerson()
		for _, p := range item.Participants {
			raw[p] = raw[p].Add(per)
		}
	}
	return raw
}

// roundPreservingTotal rounds every amount to cents in name order; the last
// name takes whatever is left of the exact total.
func roundPreservingTotal(exact map[string]decimal.Decimal) map[string]decimal.Decimal {
	names := make([]string, 0, len(exact))
	total := decimal.Zero
	for name, amount := range exact {
		names = append(names, name)
		total = total.Add(amount)
	}
	slices.Sort(names)

	out := make(map[string]decimal.Decimal, len(exact))
	running := decimal.Zero
	for i, name := range names {
		if i == len(names)-1 {
			out[name] = total.Sub(running).RoundBank(2)
			break
		}
		out[name] = exact[name].Round(2)
		running = running.Add(out[name])
	}
	return out
}
