package app

import (
	"context"

	cartdomain "github.com/dwikikusuma/shopbot/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/shopbot/internal/catalog/domain"
)

type CartRepo interface {
	Get(ctx context.Context, userID int64) (cartdomain.Cart, error)
	AddItem(ctx context.Context, userID int64, code string, delta int64) error
	Clear(ctx context.Context, userID int64) error
}

// ProductChecker is the slice of the catalog the cart needs: enough to
// refuse adds for codes that do not exist.
type ProductChecker interface {
	GetProduct(ctx context.Context, code string) (catalogdomain.Product, error)
}
