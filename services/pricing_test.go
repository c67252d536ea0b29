package services

import (
	"errors"
	"testing"
)

func won(v int64) *int64 { return &v }

func TestResolvePrice_StandardMode(t *testing.T) {
	item := StudyItem{ID: 12, PriceOral: won(45_000_000), PriceIV: won(52_000_000)}
	primary := OverlayTable{12: {Oral: won(99_000_000), IV: won(99_000_000)}}
	secondary := OverlayTable{12: {Oral: won(88_000_000)}}

	tests := []struct {
		name   string
		route  Route
		expect int64
	}{
		{"oral uses base price", RouteOral, 45_000_000},
		{"iv uses base price", RouteIV, 52_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePrice(item, tt.route, PricingStandard, primary, secondary)
			if !ok {
				t.Fatal("expected a price, got unavailable")
			}
			if got != tt.expect {
				t.Errorf("ResolvePrice() = %d, want %d", got, tt.expect)
			}
		})
	}
}

func TestResolvePrice_StandardModeUnavailableRoute(t *testing.T) {
	item := StudyItem{ID: 3, PriceOral: won(30_000_000)} // no IV offering
	if _, ok := ResolvePrice(item, RouteIV, PricingStandard, nil, nil); ok {
		t.Error("expected unavailable for a route with no base price")
	}
}

func TestResolvePrice_OECDPrecedence(t *testing.T) {
	item := StudyItem{ID: 7, PriceOral: won(40_000_000), PriceIV: won(48_000_000)}

	tests := []struct {
		name      string
		route     Route
		primary   OverlayTable
		secondary OverlayTable
		expect    int64
		expectOK  bool
	}{
		{
			name:     "primary overlay wins",
			route:    RouteOral,
			primary:  OverlayTable{7: {Oral: won(55_000_000)}},
			secondary: OverlayTable{7: {Oral: won(50_000_000)}},
			expect:   55_000_000,
			expectOK: true,
		},
		{
			name:      "secondary overlay when primary missing",
			route:     RouteOral,
			secondary: OverlayTable{7: {Oral: won(50_000_000)}},
			expect:    50_000_000,
			expectOK:  true,
		},
		{
			name:      "secondary overlay when primary covers other route only",
			route:     RouteOral,
			primary:   OverlayTable{7: {IV: won(60_000_000)}},
			secondary: OverlayTable{7: {Oral: won(50_000_000)}},
			expect:    50_000_000,
			expectOK:  true,
		},
		{
			name:     "base price when no overlay defines the route",
			route:    RouteIV,
			primary:  OverlayTable{7: {Oral: won(55_000_000)}},
			secondary: OverlayTable{7: {Oral: won(50_000_000)}},
			expect:   48_000_000,
			expectOK: true,
		},
		{
			name:     "base price when overlays have no entry for the item",
			route:    RouteOral,
			primary:  OverlayTable{99: {Oral: won(1)}},
			expect:   40_000_000,
			expectOK: true,
		},
		{
			name:     "nil overlay tables fall back to base",
			route:    RouteOral,
			expect:   40_000_000,
			expectOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePrice(item, tt.route, PricingOECDAdjusted, tt.primary, tt.secondary)
			if ok != tt.expectOK {
				t.Fatalf("ok = %v, want %v", ok, tt.expectOK)
			}
			if got != tt.expect {
				t.Errorf("ResolvePrice() = %d, want %d", got, tt.expect)
			}
		})
	}
}

func TestResolvePrice_OECDUnavailableEverywhere(t *testing.T) {
	item := StudyItem{ID: 4, PriceOral: won(25_000_000)} // no IV price at all
	if _, ok := ResolvePrice(item, RouteIV, PricingOECDAdjusted, OverlayTable{}, OverlayTable{}); ok {
		t.Error("expected unavailable when neither overlay nor base offers the route")
	}
}

func TestResolveComboPrice(t *testing.T) {
	item := ComboStudyItem{
		ID:          301,
		PricePair:   62_000_000,
		PriceTriple: 74_000_000,
		PriceQuad:   86_000_000,
	}

	tests := []struct {
		name   string
		arity  int
		expect int64
	}{
		{"two components", 2, 62_000_000},
		{"three components", 3, 74_000_000},
		{"four components", 4, 86_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveComboPrice(item, tt.arity)
			if err != nil {
				t.Fatalf("ResolveComboPrice() error = %v", err)
			}
			if got != tt.expect {
				t.Errorf("ResolveComboPrice(%d) = %d, want %d", tt.arity, got, tt.expect)
			}
		})
	}
}

func TestResolveComboPrice_InvalidArity(t *testing.T) {
	item := ComboStudyItem{ID: 301, PricePair: 62_000_000}
	for _, arity := range []int{0, 1, 5, -2} {
		if _, err := ResolveComboPrice(item, arity); !errors.Is(err, ErrInvalidComboArity) {
			t.Errorf("arity %d: error = %v, want ErrInvalidComboArity", arity, err)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseRoute("intramuscular"); err == nil {
		t.Error("expected error for unknown route")
	}
	if _, err := ParsePricingMode("glp"); err == nil {
		t.Error("expected error for unknown pricing mode")
	}
	if _, err := ParseFormulationCategory("drug_biosimilar"); err == nil {
		t.Error("expected error for unknown category")
	}
	for _, c := range FormulationCategories {
		got, err := ParseFormulationCategory(string(c))
		if err != nil || got != c {
			t.Errorf("ParseFormulationCategory(%q) = %v, %v", c, got, err)
		}
	}
}
