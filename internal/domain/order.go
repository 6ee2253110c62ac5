package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in its lifecycle order. Reports iterate
// this slice so status breakdowns come out deterministic.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// OrderLineItem is one product entry within an order. Price is the unit
// price at purchase time, not the product's current price.
type OrderLineItem struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Items       []OrderLineItem `json:"items"`
	Status      OrderStatus     `json:"status"`
	TotalPrice  float64         `json:"totalPrice"`
	IsPaid      bool            `json:"isPaid"`
	IsDelivered bool            `json:"isDelivered"`
	CreatedAt   time.Time       `json:"createdAt"`
}
