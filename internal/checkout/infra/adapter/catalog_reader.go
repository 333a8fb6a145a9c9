package adapter

import (
	"context"
	"errors"

	catalogapp "github.com/dwikikusuma/shopbot/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/shopbot/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, code string) (checkoutapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, code)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) {
			return checkoutapp.Product{}, checkoutapp.ErrProductNotFound
		}
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		Code:     p.Code,
		Name:     p.Name,
		Currency: p.Price.Currency,
		Amount:   p.Price.Amount,
	}, nil
}
