package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/mkravets/shop-analytics/internal/analytics"
	"github.com/mkravets/shop-analytics/internal/domain"
)

const uncategorized = "Uncategorized"

// Sales returns the admin sales report for the given timeFrame
// (daily/weekly/monthly, defaulting to monthly when empty).
func (s *Service) Sales(ctx context.Context, timeFrame string) (json.RawMessage, error) {
	g, err := analytics.ParseGranularity(timeFrame)
	if err != nil {
		return nil, err
	}
	key := ReportSales + ":" + string(g)
	return s.generate(ctx, ReportSales, key, func(ctx context.Context) (any, error) {
		return s.buildSales(ctx, g)
	})
}

func (s *Service) buildSales(ctx context.Context, g analytics.Granularity) (SalesReport, error) {
	rep := SalesReport{
		TimeFrame:          string(g),
		SalesSeries:        analytics.SalesSeries{},
		TopSellingProducts: []ProductSales{},
		SalesByCategory:    []CategorySales{},
	}

	orders, err := s.allOrders(ctx)
	if err != nil {
		return rep, err
	}
	products, err := s.allProducts(ctx)
	if err != nil {
		return rep, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	rep.SalesSeries = analytics.BucketOrders(orders, g, s.clock.Now(), nil)

	type acc struct {
		sold    int
		revenue float64
	}
	perProduct := map[string]*acc{}
	perCategory := map[string]*CategorySales{}
	for _, o := range orders {
		for _, it := range o.Items {
			a := perProduct[it.ProductID]
			if a == nil {
				a = &acc{}
				perProduct[it.ProductID] = a
			}
			a.sold += it.Quantity
			a.revenue += it.Price * float64(it.Quantity)

			cat := uncategorized
			if p, ok := byID[it.ProductID]; ok && p.Category != "" {
				cat = p.Category
			}
			c := perCategory[cat]
			if c == nil {
				c = &CategorySales{Category: cat}
				perCategory[cat] = c
			}
			c.TotalSales += it.Price * float64(it.Quantity)
			c.Count += it.Quantity
		}
	}

	top := make([]ProductSales, 0, len(perProduct))
	for id, a := range perProduct {
		ps := ProductSales{
			ProductID: id,
			Category:  uncategorized,
			TotalSold: a.sold,
			Revenue:   a.revenue,
		}
		if p, ok := byID[id]; ok {
			ps.Name = p.Name
			ps.Price = p.Price
			if p.Category != "" {
				ps.Category = p.Category
			}
		}
		top = append(top, ps)
	}
	// Ties break on revenue then id so repeated runs produce identical bytes.
	sort.Slice(top, func(i, j int) bool {
		if top[i].TotalSold != top[j].TotalSold {
			return top[i].TotalSold > top[j].TotalSold
		}
		if top[i].Revenue != top[j].Revenue {
			return top[i].Revenue > top[j].Revenue
		}
		return top[i].ProductID < top[j].ProductID
	})
	if len(top) > 10 {
		top = top[:10]
	}
	rep.TopSellingProducts = top

	cats := make([]CategorySales, 0, len(perCategory))
	for _, c := range perCategory {
		cats = append(cats, *c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].TotalSales != cats[j].TotalSales {
			return cats[i].TotalSales > cats[j].TotalSales
		}
		return cats[i].Category < cats[j].Category
	})
	rep.SalesByCategory = cats

	return rep, nil
}
