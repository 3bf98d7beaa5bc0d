package domain

// Report is the rendered view of an allocated bill
type Report struct {
	Title    string
	Items    []ReportItem
	Subtotal string
	Charge   string // empty when no charge applies
	Discount string // empty when no discount applies
	Owed     []ReportDetail
}

// ReportItem describes one item line of the report
type ReportItem struct {
	Name         string
	Price        string
	Participants []string
	PerPerson    string
}

// ReportDetail is a single participant row
type ReportDetail struct {
	Name  string
	Value string
	Raw   string
}
