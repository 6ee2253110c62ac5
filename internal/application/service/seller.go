package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/mkravets/shop-analytics/internal/analytics"
	"github.com/mkravets/shop-analytics/internal/domain"
)

// Seller-facing report variants. Orders carry no seller index, so each of
// these scans the order set and projects it through a SellerScope; only the
// seller's own line items ever contribute to money totals.

const (
	sellerRecentScan  = 10
	sellerRecentLimit = 4
	sellerLowStockMax = 5
)

// Metric labels for the seller variants, kept apart from the admin reports so
// hit/miss and duration numbers do not conflate the two audiences.
const (
	reportSellerOverview = "seller:overview"
	reportSellerSales    = "seller:sales"
	reportSellerRecent   = "seller:recent-orders"
	reportSellerLowStock = "seller:low-stock"
)

// sellerKey builds cache keys report-name-first so InvalidateReports'
// prefix sweep reaches the seller variants along with the admin entry.
func sellerKey(report string, parts ...string) string {
	key := report + ":seller"
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func (s *Service) sellerScope(ctx context.Context, sellerID string) (*analytics.SellerScope, []domain.Product, error) {
	products, err := s.sellerProducts(ctx, sellerID)
	if err != nil {
		return nil, nil, err
	}
	return analytics.NewSellerScope(sellerID, products), products, nil
}

// SellerOverview returns product and order stats for one seller.
func (s *Service) SellerOverview(ctx context.Context, sellerID string) (json.RawMessage, error) {
	key := sellerKey(ReportOverview, sellerID)
	return s.generate(ctx, reportSellerOverview, key, func(ctx context.Context) (any, error) {
		return s.buildSellerOverview(ctx, sellerID)
	})
}

func (s *Service) buildSellerOverview(ctx context.Context, sellerID string) (SellerOverviewReport, error) {
	var rep SellerOverviewReport

	scope, products, err := s.sellerScope(ctx, sellerID)
	if err != nil {
		return rep, err
	}
	for _, p := range products {
		rep.ProductStats.TotalProducts++
		rep.ProductStats.TotalStock += p.Stock
		if p.Status == domain.ProductActive {
			rep.ProductStats.TotalActiveProducts++
			if p.Stock < lowStockThreshold {
				rep.ProductStats.LowStockProducts++
			}
		}
	}

	orders, err := s.allOrders(ctx)
	if err != nil {
		return rep, err
	}
	cutoff := s.clock.Now().AddDate(0, 0, -activeWindowDays)
	for _, o := range orders {
		if !scope.Contains(o) {
			continue
		}
		rep.OrderStats.TotalOrders++
		rep.OrderStats.TotalSales += scope.Subtotal(o)
		if !o.CreatedAt.Before(cutoff) {
			rep.OrderStats.RecentOrders++
		}
	}

	return rep, nil
}

// SellerSales returns the seller's sales series and order status breakdown.
func (s *Service) SellerSales(ctx context.Context, sellerID, timeFrame string) (json.RawMessage, error) {
	g, err := analytics.ParseGranularity(timeFrame)
	if err != nil {
		return nil, err
	}
	key := sellerKey(ReportSales, sellerID, string(g))
	return s.generate(ctx, reportSellerSales, key, func(ctx context.Context) (any, error) {
		return s.buildSellerSales(ctx, sellerID, g)
	})
}

func (s *Service) buildSellerSales(ctx context.Context, sellerID string, g analytics.Granularity) (SellerSalesReport, error) {
	rep := SellerSalesReport{
		TimeFrame:   string(g),
		SalesSeries: analytics.SalesSeries{},
	}

	scope, _, err := s.sellerScope(ctx, sellerID)
	if err != nil {
		return rep, err
	}
	orders, err := s.allOrders(ctx)
	if err != nil {
		return rep, err
	}
	inScope := scope.Filter(orders)

	rep.SalesSeries = analytics.BucketOrders(inScope, g, s.clock.Now(), scope.Subtotal)

	for _, o := range inScope {
		switch o.Status {
		case domain.StatusPending:
			rep.OrderStatusBreakdown.Pending++
		case domain.StatusProcessing:
			rep.OrderStatusBreakdown.Processing++
		case domain.StatusShipped:
			rep.OrderStatusBreakdown.Shipped++
		case domain.StatusDelivered:
			rep.OrderStatusBreakdown.Delivered++
		case domain.StatusCancelled:
			rep.OrderStatusBreakdown.Cancelled++
		}
	}

	return rep, nil
}

// SellerRecentOrders returns the seller's newest in-scope orders with the
// seller's own subtotal per order.
func (s *Service) SellerRecentOrders(ctx context.Context, sellerID string) (json.RawMessage, error) {
	key := sellerKey(ReportOverview, sellerID, "recent")
	return s.generate(ctx, reportSellerRecent, key, func(ctx context.Context) (any, error) {
		return s.buildSellerRecentOrders(ctx, sellerID)
	})
}

func (s *Service) buildSellerRecentOrders(ctx context.Context, sellerID string) ([]SellerRecentOrder, error) {
	out := []SellerRecentOrder{}

	scope, _, err := s.sellerScope(ctx, sellerID)
	if err != nil {
		return out, err
	}
	orders, err := s.recentOrders(ctx, sellerRecentScan)
	if err != nil {
		return out, err
	}
	inScope := scope.Filter(orders)
	if len(inScope) > sellerRecentLimit {
		inScope = inScope[:sellerRecentLimit]
	}

	ids := make([]string, 0, len(inScope))
	for _, o := range inScope {
		ids = append(ids, o.UserID)
	}
	customers, err := s.usersByIDs(ctx, ids)
	if err != nil {
		return out, err
	}
	for _, o := range inScope {
		ro := SellerRecentOrder{
			ID:        o.ID,
			Total:     scope.Subtotal(o),
			Status:    string(o.Status),
			CreatedAt: o.CreatedAt,
		}
		if u, ok := customers[o.UserID]; ok {
			ro.Customer = u.Name
		}
		out = append(out, ro)
	}

	return out, nil
}

// SellerLowStock returns the seller's active products running low, lowest
// stock first.
func (s *Service) SellerLowStock(ctx context.Context, sellerID string) (json.RawMessage, error) {
	key := sellerKey(ReportInventory, sellerID, "lowstock")
	return s.generate(ctx, reportSellerLowStock, key, func(ctx context.Context) (any, error) {
		return s.buildSellerLowStock(ctx, sellerID)
	})
}

func (s *Service) buildSellerLowStock(ctx context.Context, sellerID string) ([]SellerLowStockProduct, error) {
	out := []SellerLowStockProduct{}

	products, err := s.sellerProducts(ctx, sellerID)
	if err != nil {
		return out, err
	}
	low := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Status == domain.ProductActive && p.Stock < lowStockThreshold {
			low = append(low, p)
		}
	}
	sort.Slice(low, func(i, j int) bool {
		if low[i].Stock != low[j].Stock {
			return low[i].Stock < low[j].Stock
		}
		return low[i].ID < low[j].ID
	})
	if len(low) > sellerLowStockMax {
		low = low[:sellerLowStockMax]
	}
	for _, p := range low {
		out = append(out, SellerLowStockProduct{
			ID:        p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			Threshold: lowStockThreshold,
		})
	}

	return out, nil
}
