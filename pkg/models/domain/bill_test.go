package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdjustment_Resolve(t *testing.T) {
	base := decimal.RequireFromString("27.44")

	assert.Equal(t, "5.488", Percentage(decimal.NewFromInt(20)).Resolve(base).String())
	assert.Equal(t, "-2.5", Amount(decimal.RequireFromString("-2.50")).Resolve(base).String())

	var none *Adjustment
	assert.True(t, none.Resolve(base).IsZero())
	assert.True(t, none.IsZero())
}

func TestBill_ParticipantsKeepFirstAppearance(t *testing.T) {
	bill := Bill{Items: []Item{
		{Name: "Pizza", Participants: []string{"K"}, Price: decimal.NewFromInt(1)},
		{Name: "Milk", Participants: []string{"Y", "R", "K", "Y"}, Price: decimal.NewFromInt(2)},
	}}

	assert.Equal(t, []string{"K", "Y", "R"}, bill.Participants())
	assert.Equal(t, "3", bill.Subtotal().String())
}

func TestLineError_Unwraps(t *testing.T) {
	err := fmt.Errorf("parse: %w", &LineError{Line: 2, Text: "charge:x", Err: &InvalidAmountError{Text: "x"}})

	var amount *InvalidAmountError
	assert.True(t, errors.As(err, &amount))
	assert.Equal(t, `parse: line 2 "charge:x": invalid amount "x"`, err.Error())
}
