package analytics

import "github.com/mkravets/shop-analytics/internal/domain"

// SellerScope projects globally stored orders onto a single seller. Orders
// carry no seller reference, so membership is resolved per line item through
// the product's seller. An order is in scope when any of its line items is
// the seller's; money and quantity totals only ever count the matching items,
// since one order can mix products from several sellers.
type SellerScope struct {
	sellerID string
	owned    map[string]struct{}
}

func NewSellerScope(sellerID string, products []domain.Product) *SellerScope {
	owned := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.SellerID == sellerID {
			owned[p.ID] = struct{}{}
		}
	}
	return &SellerScope{sellerID: sellerID, owned: owned}
}

func (s *SellerScope) SellerID() string { return s.sellerID }

// Contains reports whether any line item of the order belongs to the seller.
func (s *SellerScope) Contains(o domain.Order) bool {
	for _, it := range o.Items {
		if _, ok := s.owned[it.ProductID]; ok {
			return true
		}
	}
	return false
}

// Subtotal sums price*quantity over the seller's line items only.
func (s *SellerScope) Subtotal(o domain.Order) float64 {
	var sum float64
	for _, it := range o.Items {
		if _, ok := s.owned[it.ProductID]; ok {
			sum += it.Price * float64(it.Quantity)
		}
	}
	return sum
}

// Filter keeps the in-scope orders, preserving their order.
func (s *SellerScope) Filter(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if s.Contains(o) {
			out = append(out, o)
		}
	}
	return out
}
