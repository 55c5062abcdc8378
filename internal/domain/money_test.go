package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"estoque/internal/domain"
)

func TestFormatBR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"35", "35,00"},
		{"999.99", "999,99"},
		{"1000", "1.000,00"},
		{"1234.56", "1.234,56"},
		{"1234567.8", "1.234.567,80"},
		{"100000", "100.000,00"},
		{"0.005", "0,01"},
		{"2.345", "2,35"},
		{"-1234.5", "-1.234,50"},
	}
	for _, tc := range cases {
		got := domain.FormatBR(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("FormatBR(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCentsRoundTrip(t *testing.T) {
	p := domain.CentsToPrice(1050)
	if !p.Equal(decimal.RequireFromString("10.50")) {
		t.Fatalf("want 10.50, got %s", p)
	}
	if c := domain.PriceToCents(p); c != 1050 {
		t.Fatalf("want 1050 cents, got %d", c)
	}
}

func TestBreakdownLookup(t *testing.T) {
	b := domain.Breakdown{{Key: "Widget", Quantity: 7}, {Key: "Gadget", Quantity: 2}}
	if q, ok := b.Lookup("Gadget"); !ok || q != 2 {
		t.Fatalf("Lookup(Gadget) = %d,%v", q, ok)
	}
	if _, ok := b.Lookup("Nope"); ok {
		t.Fatal("unexpected hit")
	}
	if v := b.Values(); v[1] != 2 {
		t.Fatalf("values: %v", v)
	}
}

func TestBreakdownBars(t *testing.T) {
	b := domain.Breakdown{{Key: "Parafuso", Quantity: 650}, {Key: "Porca", Quantity: 320}, {Key: "Furadeira", Quantity: 4}, {Key: "Vazio", Quantity: 0}}
	bars := b.Bars()
	want := []domain.Bar{
		{Key: "Parafuso", Quantity: 650, Percent: 100},
		{Key: "Porca", Quantity: 320, Percent: 49},
		{Key: "Furadeira", Quantity: 4, Percent: 1},
		{Key: "Vazio", Quantity: 0, Percent: 0},
	}
	if len(bars) != len(want) {
		t.Fatalf("bars: %+v", bars)
	}
	for i := range want {
		if bars[i] != want[i] {
			t.Errorf("bar %d = %+v, want %+v", i, bars[i], want[i])
		}
	}
	if len(domain.Breakdown(nil).Bars()) != 0 {
		t.Fatal("empty breakdown should have no bars")
	}
}
