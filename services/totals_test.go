package services

import "testing"

func TestAggregateTotals(t *testing.T) {
	tests := []struct {
		name            string
		lines           []SelectedLine
		formulation     int64
		discountPercent float64
		expect          QuoteTotals
	}{
		{
			name:  "ten percent discount",
			lines: []SelectedLine{{Price: 100_000_000}},
			expect: QuoteTotals{
				SubtotalTest:   100_000_000,
				DiscountAmount: 10_000_000,
				TotalAmount:    90_000_000,
			},
			discountPercent: 10,
		},
		{
			name:  "zero discount keeps full total",
			lines: []SelectedLine{{Price: 45_000_000}, {Price: 8_000_000, IsOption: true}},
			formulation: 11_000_000,
			expect: QuoteTotals{
				SubtotalTest:        53_000_000,
				SubtotalFormulation: 11_000_000,
				DiscountAmount:      0,
				TotalAmount:         64_000_000,
			},
		},
		{
			name:   "all-zero inputs",
			expect: QuoteTotals{},
		},
		{
			name:            "discount floors to whole won",
			lines:           []SelectedLine{{Price: 333}},
			discountPercent: 10,
			expect: QuoteTotals{
				SubtotalTest:   333,
				DiscountAmount: 33, // floor(33.3)
				TotalAmount:    300,
			},
		},
		{
			name:            "discount applies to formulation too",
			lines:           []SelectedLine{{Price: 70_000_000}},
			formulation:     30_000_000,
			discountPercent: 5,
			expect: QuoteTotals{
				SubtotalTest:        70_000_000,
				SubtotalFormulation: 30_000_000,
				DiscountAmount:      5_000_000,
				TotalAmount:         95_000_000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateTotals(tt.lines, tt.formulation, tt.discountPercent)
			if got != tt.expect {
				t.Errorf("AggregateTotals() = %+v, want %+v", got, tt.expect)
			}
		})
	}
}
