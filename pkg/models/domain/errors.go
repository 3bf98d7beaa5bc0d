package domain

import "fmt"

type MalformedLineError struct {
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("malformed line %q", e.Text)
	}
	return fmt.Sprintf("malformed line %q: %s", e.Text, e.Reason)
}

type EmptyParticipantListError struct {
	Item string
}

func (e *EmptyParticipantListError) Error() string {
	return fmt.Sprintf("empty participant list for item %q", e.Item)
}

type InvalidPriceError struct {
	Text string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %q: must be a non-negative number", e.Text)
}

type InvalidPercentageError struct {
	Text string
}

func (e *InvalidPercentageError) Error() string {
	return fmt.Sprintf("invalid percentage %q", e.Text)
}

type InvalidAmountError struct {
	Text string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q", e.Text)
}

type DuplicateAdjustmentError struct {
	Kind AdjustmentKind
}

func (e *DuplicateAdjustmentError) Error() string {
	return fmt.Sprintf("duplicate %s: only one %s line is allowed per bill", e.Kind, e.Kind)
}

type EmptyBillError struct{}

func (e *EmptyBillError) Error() string {
	return "bill has no items"
}

type ZeroSubtotalError struct{}

func (e *ZeroSubtotalError) Error() string {
	return "cannot distribute charge or discount: subtotal is zero"
}

// LineError ties a parse failure to its position in the input.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
