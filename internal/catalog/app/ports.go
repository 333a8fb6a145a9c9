package app

import (
	"context"

	"github.com/dwikikusuma/shopbot/internal/catalog/domain"
)

type ProductRepo interface {
	Get(ctx context.Context, code string) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
