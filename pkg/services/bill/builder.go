package bill

import (
	"slices"

	"github.com/de-tools/billsplit/pkg/models/domain"
)

// Builder accumulates items and adjustments in input order. It is a value:
// every step returns a new Builder and leaves the receiver untouched.
type Builder struct {
	items    []domain.Item
	charge   *domain.Adjustment
	discount *domain.Adjustment
}

func (b Builder) AddItem(item domain.Item) Builder {
	b.items = append(slices.Clip(b.items), item)
	return b
}

// SetAdjustment fills the charge or discount slot. Each slot takes one value.
func (b Builder) SetAdjustment(kind domain.AdjustmentKind, adj *domain.Adjustment) (Builder, error) {
	switch kind {
	case domain.AdjustmentCharge:
		if b.charge != nil {
			return b, &domain.DuplicateAdjustmentError{Kind: kind}
		}
		b.charge = adj
	case domain.AdjustmentDiscount:
		if b.discount != nil {
			return b, &domain.DuplicateAdjustmentError{Kind: kind}
		}
		b.discount = adj
	}
	return b, nil
}

// Accept parses a classified line and folds it into the builder.
func (b Builder) Accept(line Line) (Builder, error) {
	if line.Kind == ItemLine {
		item, err := ParseItem(line)
		if err != nil {
			return b, err
		}
		return b.AddItem(item), nil
	}

	kind, adj, err := ParseDirective(line)
	if err != nil {
		return b, err
	}
	return b.SetAdjustment(kind, adj)
}

func (b Builder) Len() int {
	return len(b.items)
}

// Finalize returns the accumulated Bill, failing when no item was added.
func (b Builder) Finalize() (domain.Bill, error) {
	if len(b.items) == 0 {
		return domain.Bill{}, &domain.EmptyBillError{}
	}
	return domain.Bill{
		Items:    slices.Clone(b.items),
		Charge:   b.charge,
		Discount: b.discount,
	}, nil
}
