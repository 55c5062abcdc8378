package services

import (
	"context"

	"github.com/shopspring/decimal"

	"estoque/internal/domain"
	"estoque/internal/validate"
)

// Store is the durable side of the ledger. Decrement must be atomic per
// record and report domain.ErrNotFound / *domain.InsufficientStockError.
type Store interface {
	Create(ctx context.Context, p domain.NewProduct) (domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	ListAvailable(ctx context.Context) ([]domain.Product, error)
	Decrement(ctx context.Context, id int64, amount int) (domain.Product, error)
}

// ProductInput carries the raw insert form.
type ProductInput struct {
	Supplier string
	Name     string
	Quantity string
	Price    string
}

// RemovalInput carries the raw removal form.
type RemovalInput struct {
	ProductID string
	Amount    string
}

type Ledger struct {
	Store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{Store: store}
}

// CreateProduct validates the raw fields and records new stock.
func (l *Ledger) CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	cmd, err := validate.NewProduct(in.Supplier, in.Name, in.Quantity, in.Price)
	if err != nil {
		return domain.Product{}, err
	}
	return l.Store.Create(ctx, cmd)
}

func (l *Ledger) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	return l.Store.ListAvailable(ctx)
}

// RemoveQuantity takes stock out of a record; amount never exceeds what is there.
func (l *Ledger) RemoveQuantity(ctx context.Context, in RemovalInput) (domain.Product, error) {
	cmd, err := validate.Removal(in.ProductID, in.Amount)
	if err != nil {
		return domain.Product{}, err
	}
	return l.Store.Decrement(ctx, cmd.ProductID, cmd.Amount)
}

// ComputeSummary aggregates the available records.
func (l *Ledger) ComputeSummary(ctx context.Context) (domain.Summary, error) {
	products, err := l.Store.ListAvailable(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return Summarize(products), nil
}

// Summarize is the pure aggregation behind ComputeSummary. Depleted records
// are skipped; ties on extremes keep the first record seen.
func Summarize(products []domain.Product) domain.Summary {
	s := domain.Summary{
		Products:   make([]domain.Product, 0, len(products)),
		TotalValue: decimal.Zero,
		ByProduct:  domain.Breakdown{},
		BySupplier: domain.Breakdown{},
	}
	byName := map[string]int{}
	bySupplier := map[string]int{}
	maxPrice, minPrice, maxQty, minQty := -1, -1, -1, -1

	for _, p := range products {
		if !p.Available() {
			continue
		}
		i := len(s.Products)
		s.Products = append(s.Products, p)
		s.TotalQuantity += p.Quantity
		s.TotalValue = s.TotalValue.Add(p.LineValue())
		s.ByProduct = tally(s.ByProduct, byName, p.Name, p.Quantity)
		s.BySupplier = tally(s.BySupplier, bySupplier, p.Supplier, p.Quantity)

		if maxPrice < 0 || p.UnitPrice.GreaterThan(s.Products[maxPrice].UnitPrice) {
			maxPrice = i
		}
		if minPrice < 0 || p.UnitPrice.LessThan(s.Products[minPrice].UnitPrice) {
			minPrice = i
		}
		if maxQty < 0 || p.Quantity > s.Products[maxQty].Quantity {
			maxQty = i
		}
		if minQty < 0 || p.Quantity < s.Products[minQty].Quantity {
			minQty = i
		}
	}
	if len(s.Products) > 0 {
		s.MostExpensive = &s.Products[maxPrice]
		s.Cheapest = &s.Products[minPrice]
		s.HighestQuantity = &s.Products[maxQty]
		s.LowestQuantity = &s.Products[minQty]
	}
	s.TotalValueText = domain.FormatBR(s.TotalValue)
	return s
}

func tally(b domain.Breakdown, idx map[string]int, key string, qty int) domain.Breakdown {
	if i, ok := idx[key]; ok {
		b[i].Quantity += qty
		return b
	}
	idx[key] = len(b)
	return append(b, domain.Tally{Key: key, Quantity: qty})
}
