package services

import "math"

// QuoteTotals holds the aggregated figures of one quotation.
type QuoteTotals struct {
	SubtotalTest        int64
	SubtotalFormulation int64
	DiscountAmount      int64
	TotalAmount         int64
}

// AggregateTotals sums the resolved line prices and the formulation
// subtotal, applies the percentage discount (floored to a whole won) and
// returns the final figures. Option lines bill like any other line.
func AggregateTotals(lines []SelectedLine, formulationSubtotal int64, discountPercent float64) QuoteTotals {
	var subtotalTest int64
	for _, line := range lines {
		subtotalTest += line.Price
	}

	base := subtotalTest + formulationSubtotal
	discount := int64(math.Floor(float64(base) * discountPercent / 100))

	return QuoteTotals{
		SubtotalTest:        subtotalTest,
		SubtotalFormulation: formulationSubtotal,
		DiscountAmount:      discount,
		TotalAmount:         base - discount,
	}
}
