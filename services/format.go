package services

import (
	"strconv"
	"strings"
)

// FormatKRW formats an amount in won with thousands grouping,
// e.g. 79000000 → "79,000,000원".
func FormatKRW(amount int64) string {
	if amount < 0 {
		return "-" + FormatKRW(-amount)
	}
	return groupThousands(strconv.FormatInt(amount, 10)) + "원"
}

// FormatManwon formats an amount in ten-thousand-won units for the short
// display form, e.g. 79000000 → "7,900만원", 10000 → "1만원".
func FormatManwon(amount int64) string {
	if amount < 0 {
		return "-" + FormatManwon(-amount)
	}
	return groupThousands(strconv.FormatInt(amount/10_000, 10)) + "만원"
}

// groupThousands inserts commas every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
