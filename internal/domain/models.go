package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID        int64           `json:"id"`
	Supplier  string          `json:"supplier"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Available reports whether the record still shows up in listings.
func (p Product) Available() bool { return p.Quantity > 0 }

// LineValue is quantity x unit price.
func (p Product) LineValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// NewProduct is a validated insert command.
type NewProduct struct {
	Supplier  string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Removal is a validated removal command. Amount is always >= 1.
type Removal struct {
	ProductID int64
	Amount    int
}

type Tally struct {
	Key      string `json:"key"`
	Quantity int    `json:"quantity"`
}

// Breakdown keeps per-key totals in first-seen order.
type Breakdown []Tally

func (b Breakdown) Lookup(key string) (int, bool) {
	for _, t := range b {
		if t.Key == key {
			return t.Quantity, true
		}
	}
	return 0, false
}

func (b Breakdown) Values() []int {
	out := make([]int, len(b))
	for i, t := range b {
		out[i] = t.Quantity
	}
	return out
}

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Key      string
	Quantity int
	Percent  int
}

// Bars scales each tally against the largest one. A non-zero tally
// never rounds down to an invisible bar.
func (b Breakdown) Bars() []Bar {
	top := 0
	for _, q := range b.Values() {
		if q > top {
			top = q
		}
	}
	out := make([]Bar, len(b))
	for i, t := range b {
		out[i] = Bar{Key: t.Key, Quantity: t.Quantity}
		if top > 0 {
			pct := t.Quantity * 100 / top
			if pct == 0 && t.Quantity > 0 {
				pct = 1
			}
			out[i].Percent = pct
		}
	}
	return out
}

type Summary struct {
	Products        []Product       `json:"products"`
	TotalQuantity   int             `json:"total_quantity"`
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalValueText  string          `json:"total_value_text"`
	ByProduct       Breakdown       `json:"by_product"`
	BySupplier      Breakdown       `json:"by_supplier"`
	MostExpensive   *Product        `json:"most_expensive,omitempty"`
	Cheapest        *Product        `json:"cheapest,omitempty"`
	HighestQuantity *Product        `json:"highest_quantity,omitempty"`
	LowestQuantity  *Product        `json:"lowest_quantity,omitempty"`
}
