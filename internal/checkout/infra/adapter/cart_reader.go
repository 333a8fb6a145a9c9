package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/shopbot/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/shopbot/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, userID int64) ([]checkoutapp.CartItem, error) {
	cart, err := r.svc.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]checkoutapp.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, checkoutapp.CartItem{
			Code:     it.Code,
			Quantity: it.Quantity,
		})
	}
	return items, nil
}
