package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dwikikusuma/shopbot/internal/order/domain"
	"github.com/google/uuid"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	order.ID = uuid.NewString()
	order.CreatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, status, currency, subtotal_amount, shipping_amount, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		order.ID, order.UserID, order.Status, order.Currency,
		order.SubTotalAmount, order.ShippingAmount, order.TotalAmount, order.CreatedAt,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	for i := range order.OrderItems {
		item := &order.OrderItems[i]
		item.ID = uuid.NewString()
		item.OrderID = order.ID

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_code, name, unit_amount, quantity, line_total_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.OrderID, item.Code, item.Name,
			item.UnitAmount, item.Quantity, item.LineTotalAmount,
		)
		if err != nil {
			return domain.Order{}, fmt.Errorf("insert order item %s: %w", item.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit order: %w", err)
	}

	return order, nil
}
