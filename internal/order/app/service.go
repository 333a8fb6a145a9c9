package app

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/shopbot/internal/order/domain"
)

const OrderStatusPending = "PENDING"

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// CreateOrder records a pending order. Payment capture happens later,
// outside this service.
func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if req.ShippingAmount < 0 {
		return domain.Order{}, fmt.Errorf("shipping amount cannot be negative, got %d", req.ShippingAmount)
	}
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("order must have at least one item")
	}

	orderItems := make([]domain.OrderItem, 0, len(req.Items))
	var subTotalAmount int64

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("item %d: quantity must be positive, got %d", i, item.Quantity)
		}
		if item.UnitAmount < 0 {
			return domain.Order{}, fmt.Errorf("item %d: unit amount cannot be negative, got %d", i, item.UnitAmount)
		}

		orderItems = append(orderItems, domain.OrderItem{
			Code:            item.Code,
			Name:            item.Name,
			UnitAmount:      item.UnitAmount,
			Quantity:        item.Quantity,
			LineTotalAmount: item.UnitAmount * item.Quantity,
		})

		subTotalAmount += item.UnitAmount * item.Quantity
	}

	order := domain.Order{
		UserID:         req.UserID,
		Status:         OrderStatusPending,
		Currency:       req.Currency,
		ShippingAmount: req.ShippingAmount,
		SubTotalAmount: subTotalAmount,
		TotalAmount:    subTotalAmount + req.ShippingAmount,
		OrderItems:     orderItems,
	}

	return s.repo.CreateOrderTx(ctx, order)
}
