package domain

import "time"

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductDraft    ProductStatus = "draft"
	ProductArchived ProductStatus = "archived"
)

type Product struct {
	ID        string        `json:"id"`
	SellerID  string        `json:"sellerId"`
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Price     float64       `json:"price"`
	Stock     int           `json:"stock"`
	Status    ProductStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
