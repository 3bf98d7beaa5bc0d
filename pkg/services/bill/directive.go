package bill

import (
	"fmt"
	"strings"

	"github.com/de-tools/billsplit/pkg/models/domain"
)

// ParseDirective converts a charge or discount line into its adjustment.
// A body ending in '%' is a percentage, anything else a signed amount.
func ParseDirective(line Line) (domain.AdjustmentKind, *domain.Adjustment, error) {
	var kind domain.AdjustmentKind
	switch line.Kind {
	case ChargeLine:
		kind = domain.AdjustmentCharge
	case DiscountLine:
		kind = domain.AdjustmentDiscount
	default:
		return "", nil, fmt.Errorf("cannot parse %s line as a directive", line.Kind)
	}

	if number, ok := strings.CutSuffix(line.Body, "%"); ok {
		pct, ok := parseNumber(strings.TrimSpace(number))
		if !ok {
			return "", nil, &domain.InvalidPercentageError{Text: line.Body}
		}
		return kind, domain.Percentage(pct), nil
	}

	amount, ok := parseNumber(line.Body)
	if !ok {
		return "", nil, &domain.InvalidAmountError{Text: line.Body}
	}
	return kind, domain.Amount(amount), nil
}
