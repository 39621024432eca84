// Package receipt parses receipt filenames and generates the deterministic
// donation dataset shared by every receipt rendering.
package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// ParseFilename decodes "donor-id-YYYY.pdf" into a receipt request.
// Donor ids may contain dashes, so only a trailing four-digit suffix is
// taken as the year; anything else falls back to now's year.
func ParseFilename(filename string, now time.Time) domain.ReceiptRequest {
	stem := strings.TrimSuffix(strings.TrimSuffix(filename, ".pdf"), ".PDF")

	if i := strings.LastIndex(stem, "-"); i > 0 && i < len(stem)-1 {
		if year := stem[i+1:]; yearPattern.MatchString(year) {
			return domain.ReceiptRequest{DonorID: stem[:i], TaxYear: year}
		}
	}

	return domain.ReceiptRequest{
		DonorID: stem,
		TaxYear: strconv.Itoa(now.Year()),
	}
}

// Filename is the inverse of ParseFilename.
func Filename(req domain.ReceiptRequest) string {
	return req.DonorID + "-" + req.TaxYear + ".pdf"
}
