package app

import (
	"context"

	"github.com/dwikikusuma/shopbot/internal/order/domain"
)

type OrderRepo interface {
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)
}
