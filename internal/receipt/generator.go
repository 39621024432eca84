package receipt

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	baseDonations = 5
	donationSpan  = 20
	baseValue     = 2500
	valueSpan     = 5000
	baseRowValue  = 100
	rowValueSpan  = 500
)

// Seed derives the generator seed from donor id and tax year.
func Seed(req domain.ReceiptRequest) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(req.DonorID + req.TaxYear))
	return int64(h.Sum64())
}

// Generate builds the mock donation history for a receipt. The same request
// always yields the same data; the HTML and PDF renditions both use it.
func Generate(req domain.ReceiptRequest) domain.ReceiptData {
	rng := rand.New(rand.NewSource(Seed(req)))

	total := baseDonations + rng.Intn(donationSpan)
	data := domain.ReceiptData{
		Request:        req,
		TotalDonations: total,
		TotalValue:     decimal.NewFromInt(int64(baseValue + rng.Intn(valueSpan))),
	}

	rows := min(total, domain.MaxReceiptRows)
	data.Donations = make([]domain.DonationRecord, 0, rows)

	for i := 1; i <= rows; i++ {
		month := 1 + rng.Intn(12)
		day := 1 + rng.Intn(27)
		value := baseRowValue + rng.Intn(rowValueSpan)

		data.Donations = append(data.Donations, domain.DonationRecord{
			Date:        fmt.Sprintf("%s-%02d-%02d", req.TaxYear, month, day),
			Description: fmt.Sprintf("Food Donation #%d", i),
			Value:       decimal.NewFromInt(int64(value)),
		})
	}

	if data.HasOmitted() {
		data.OmittedCount = total - domain.MaxReceiptRows
	}
	data.RemainingValue = data.TotalValue.Sub(data.ShownTotal())

	return data
}
