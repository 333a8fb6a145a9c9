package domain

import "time"

type Order struct {
	ID             string
	UserID         int64
	Status         string
	Currency       string
	SubTotalAmount int64
	ShippingAmount int64
	TotalAmount    int64
	OrderItems     []OrderItem
	CreatedAt      time.Time
}

type OrderItem struct {
	ID              string
	OrderID         string
	Code            string
	Name            string
	UnitAmount      int64
	Quantity        int64
	LineTotalAmount int64
}

type CreateOrderRequest struct {
	UserID         int64
	Currency       string
	ShippingAmount int64
	Items          []OrderItemRequest
}

type OrderItemRequest struct {
	Code       string
	Name       string
	UnitAmount int64
	Quantity   int64
}
