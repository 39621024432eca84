package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxReceiptRows is the number of donations itemized on a receipt.
const MaxReceiptRows = 10

// ReceiptRequest identifies a receipt by donor and tax year.
type ReceiptRequest struct {
	DonorID string
	TaxYear string
}

// DonorName is the display form of the donor id.
func (r ReceiptRequest) DonorName() string {
	return strings.ReplaceAll(r.DonorID, "-", " ")
}

// DonationRecord is one itemized donation on a receipt.
type DonationRecord struct {
	Date        string
	Description string
	Value       decimal.Decimal
}

// ReceiptData is the dataset shown on one tax receipt.
type ReceiptData struct {
	Request        ReceiptRequest
	TotalDonations int
	TotalValue     decimal.Decimal
	Donations      []DonationRecord
	OmittedCount   int
	RemainingValue decimal.Decimal // TotalValue minus the itemized rows
}

// HasOmitted reports whether some donations are summarized rather than itemized.
func (d ReceiptData) HasOmitted() bool {
	return d.TotalDonations > MaxReceiptRows
}

// ShownTotal sums the itemized rows.
func (d ReceiptData) ShownTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range d.Donations {
		sum = sum.Add(r.Value)
	}
	return sum
}

// Money formats a value as US dollars with two decimals.
func Money(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}
