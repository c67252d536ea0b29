package services

import (
	"errors"
	"fmt"
)

// ErrInvalidComboArity is returned when a combination arity outside 2-4 is
// requested. Silently falling back to a tier would corrupt downstream totals
// without any visible signal, so the boundary rejects it instead.
var ErrInvalidComboArity = errors.New("combination arity must be 2, 3 or 4")

// ResolvePrice resolves the billable price of a study item for one route.
//
// Under standard pricing the catalog base price applies as-is. Under
// OECD-adjusted pricing the primary overlay is consulted first, then the
// secondary, then the base price; an overlay entry that only covers the
// other route falls through exactly as if it were absent.
//
// The second return value is false when no price is offered for the route.
func ResolvePrice(item StudyItem, route Route, mode PricingMode, primary, secondary OverlayTable) (int64, bool) {
	if mode == PricingOECDAdjusted {
		for _, overlay := range []OverlayTable{primary, secondary} {
			if p := overlay.price(item.ID, route); p != nil {
				return *p, true
			}
		}
	}
	if p := item.basePrice(route); p != nil {
		return *p, true
	}
	return 0, false
}

// ResolveComboPrice selects the price tier of a combination study for the
// given number of active components.
func ResolveComboPrice(item ComboStudyItem, arity int) (int64, error) {
	switch arity {
	case 2:
		return item.PricePair, nil
	case 3:
		return item.PriceTriple, nil
	case 4:
		return item.PriceQuad, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidComboArity, arity)
}
