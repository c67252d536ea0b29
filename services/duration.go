package services

import (
	"regexp"
	"strconv"
)

// Study durations in the catalog are free text: "13주", "3개월", "단회",
// "3일", "GD6-17", "GD6~PND21" or the placeholder "-". CountCycles turns a
// duration into the number of billable content-analysis cycles.

// Content analysis is performed once per started 4-week block.
const weeksPerCycle = 4

type durationRule struct {
	pattern *regexp.Regexp
	cycles  func(matches [][]string) int
}

// Ordered rule table. The first rule whose pattern matches decides; anything
// unmatched bills a single cycle (single-dose markers, day counts,
// gestational ranges, placeholders).
var durationRules = []durationRule{
	{
		// Week counts, including ranges like "4-9주" where the largest
		// number governs.
		pattern: regexp.MustCompile(`(\d+)\s*주`),
		cycles: func(matches [][]string) int {
			weeks := 0
			for _, m := range matches {
				if n := atoiDigits(m[1]); n > weeks {
					weeks = n
				}
			}
			return (weeks + weeksPerCycle - 1) / weeksPerCycle
		},
	},
	{
		// Month counts bill one cycle per month, no division.
		pattern: regexp.MustCompile(`(\d+)\s*개월`),
		cycles: func(matches [][]string) int {
			months := 0
			for _, m := range matches {
				if n := atoiDigits(m[1]); n > months {
					months = n
				}
			}
			return months
		},
	},
}

// CountCycles converts a free-text study duration into a repeat count.
// It never fails and never returns less than 1: catalog durations are free
// text and must always produce a usable count.
func CountCycles(duration string) int {
	for _, rule := range durationRules {
		matches := rule.pattern.FindAllStringSubmatch(duration, -1)
		if len(matches) == 0 {
			continue
		}
		if n := rule.cycles(matches); n >= 1 {
			return n
		}
	}
	return 1
}

// atoiDigits converts a digits-only submatch; the patterns guarantee the
// input parses.
func atoiDigits(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
