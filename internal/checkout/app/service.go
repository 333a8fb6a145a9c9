package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/shopbot/internal/checkout/domain"
	"golang.org/x/sync/errgroup"
)

type CartReader interface {
	GetCart(ctx context.Context, userID int64) ([]CartItem, error)
}

type CartItem struct {
	Code     string
	Quantity int64
}

type CatalogReader interface {
	GetProduct(ctx context.Context, code string) (Product, error)
}

type Product struct {
	Code     string
	Name     string
	Currency string
	Amount   int64
}

// ErrProductNotFound is returned by CatalogReader for dangling codes.
// Quote skips such lines instead of failing: a stale cart entry must
// not take down rendering for the rest of the cart.
var ErrProductNotFound = errors.New("product not found")

type Service struct {
	Cart    CartReader
	Catalog CatalogReader

	currency      string
	deliveryFee   int64
	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, currency string, deliveryFee int64, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		currency:      currency,
		deliveryFee:   deliveryFee,
		maxConcurrent: maxConcurrent,
	}
}

// Quote prices the user's current cart. The delivery fee is always added
// on top of the subtotal: an empty cart still quotes as fee-only.
// Whether an empty cart may proceed is the caller's decision, not a
// pricing concern.
func (s *Service) Quote(ctx context.Context, userID int64) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx, userID)
	if err != nil {
		return domain.Quote{}, err
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		idx := idx
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(ctx, it.Code)
			if err != nil {
				if errors.Is(err, ErrProductNotFound) {
					return nil
				}
				return fmt.Errorf("failed to get product %s: %w", it.Code, err)
			}

			lineTotal := product.Amount * it.Quantity
			lines[idx] = domain.QuoteLine{
				Code:     product.Code,
				Name:     product.Name,
				Quantity: it.Quantity,
				UnitPrice: domain.Money{
					Currency: product.Currency,
					Amount:   product.Amount,
				},
				LineTotal: domain.Money{
					Currency: product.Currency,
					Amount:   lineTotal,
				},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	priced := make([]domain.QuoteLine, 0, len(lines))
	var subtotal int64
	for _, line := range lines {
		if line.Code == "" {
			continue
		}
		priced = append(priced, line)
		subtotal += line.LineTotal.Amount
	}

	return domain.Quote{
		Lines:       priced,
		Subtotal:    domain.Money{Currency: s.currency, Amount: subtotal},
		DeliveryFee: domain.Money{Currency: s.currency, Amount: s.deliveryFee},
		Total:       domain.Money{Currency: s.currency, Amount: subtotal + s.deliveryFee},
	}, nil
}
