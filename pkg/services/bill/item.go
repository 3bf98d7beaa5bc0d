package bill

import (
	"fmt"
	"slices"

	"github.com/de-tools/billsplit/pkg/models/domain"
)

// ParseItem converts a classified item line into an Item.
func ParseItem(line Line) (domain.Item, error) {
	if line.Kind != ItemLine {
		return domain.Item{}, fmt.Errorf("cannot parse %s line as an item", line.Kind)
	}
	if len(line.Participants) == 0 {
		return domain.Item{}, &domain.EmptyParticipantListError{Item: line.Name}
	}

	price, ok := parseNumber(line.Price)
	if !ok || price.IsNegative() {
		return domain.Item{}, &domain.InvalidPriceError{Text: line.Price}
	}

	return domain.Item{
		Name:         line.Name,
		Participants: slices.Clone(line.Participants),
		Price:        price,
	}, nil
}
