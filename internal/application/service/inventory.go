package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/mkravets/shop-analytics/internal/domain"
)

const (
	lowStockThreshold    = 10
	mediumStockThreshold = 50
	histogramSamples     = 5
)

// Inventory returns the admin inventory-health report.
func (s *Service) Inventory(ctx context.Context) (json.RawMessage, error) {
	return s.generate(ctx, ReportInventory, ReportInventory, func(ctx context.Context) (any, error) {
		return s.buildInventory(ctx)
	})
}

func (s *Service) buildInventory(ctx context.Context) (InventoryReport, error) {
	rep := InventoryReport{
		LowStockProducts:    []StockProduct{},
		StockLevelHistogram: []StockLevel{},
		BestAndWorstSelling: PerformanceBreakdown{
			BestSelling:  []ProductPerformance{},
			WorstSelling: []ProductPerformance{},
		},
		StockByCategory: []CategoryStock{},
	}

	products, err := s.allProducts(ctx)
	if err != nil {
		return rep, err
	}
	orders, err := s.allOrders(ctx)
	if err != nil {
		return rep, err
	}

	sorted := make([]domain.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Stock != sorted[j].Stock {
			return sorted[i].Stock < sorted[j].Stock
		}
		return sorted[i].ID < sorted[j].ID
	})

	levels := map[string]*StockLevel{}
	for _, name := range []string{"Low", "Medium", "High"} {
		levels[name] = &StockLevel{Level: name, Products: []StockProduct{}}
	}
	for _, p := range sorted {
		sp := StockProduct{ID: p.ID, Name: p.Name, Stock: p.Stock, SellerID: p.SellerID}
		if p.Stock < lowStockThreshold {
			rep.LowStockProducts = append(rep.LowStockProducts, sp)
		}
		name := "High"
		switch {
		case p.Stock < lowStockThreshold:
			name = "Low"
		case p.Stock < mediumStockThreshold:
			name = "Medium"
		}
		lvl := levels[name]
		lvl.Count++
		if len(lvl.Products) < histogramSamples {
			lvl.Products = append(lvl.Products, sp)
		}
	}
	for _, name := range []string{"Low", "Medium", "High"} {
		rep.StockLevelHistogram = append(rep.StockLevelHistogram, *levels[name])
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	type acc struct {
		sold    int
		revenue float64
	}
	perProduct := map[string]*acc{}
	for _, o := range orders {
		for _, it := range o.Items {
			a := perProduct[it.ProductID]
			if a == nil {
				a = &acc{}
				perProduct[it.ProductID] = a
			}
			a.sold += it.Quantity
			a.revenue += it.Price * float64(it.Quantity)
		}
	}
	perf := make([]ProductPerformance, 0, len(perProduct))
	for id, a := range perProduct {
		pp := ProductPerformance{
			ProductID: id,
			Category:  uncategorized,
			TotalSold: a.sold,
			Revenue:   a.revenue,
		}
		if a.sold > 0 {
			pp.AveragePrice = a.revenue / float64(a.sold)
		}
		if p, ok := byID[id]; ok {
			pp.Name = p.Name
			pp.Price = p.Price
			if p.Category != "" {
				pp.Category = p.Category
			}
		}
		perf = append(perf, pp)
	}
	sort.Slice(perf, func(i, j int) bool {
		if perf[i].TotalSold != perf[j].TotalSold {
			return perf[i].TotalSold > perf[j].TotalSold
		}
		if perf[i].Revenue != perf[j].Revenue {
			return perf[i].Revenue > perf[j].Revenue
		}
		return perf[i].ProductID < perf[j].ProductID
	})

	best := perf
	if len(best) > 5 {
		best = best[:5]
	}
	rep.BestAndWorstSelling.BestSelling = append(rep.BestAndWorstSelling.BestSelling, best...)

	worst := perf
	if len(worst) > 5 {
		worst = worst[len(worst)-5:]
	}
	// Least sold first.
	for i := len(worst) - 1; i >= 0; i-- {
		rep.BestAndWorstSelling.WorstSelling = append(rep.BestAndWorstSelling.WorstSelling, worst[i])
	}

	perCategory := map[string]*CategoryStock{}
	for _, p := range products {
		cat := p.Category
		if cat == "" {
			cat = uncategorized
		}
		c := perCategory[cat]
		if c == nil {
			c = &CategoryStock{Category: cat}
			perCategory[cat] = c
		}
		c.TotalStock += p.Stock
		c.ProductCount++
	}
	cats := make([]CategoryStock, 0, len(perCategory))
	for _, c := range perCategory {
		c.AverageStock = float64(c.TotalStock) / float64(c.ProductCount)
		cats = append(cats, *c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].ProductCount != cats[j].ProductCount {
			return cats[i].ProductCount > cats[j].ProductCount
		}
		return cats[i].Category < cats[j].Category
	})
	rep.StockByCategory = cats

	return rep, nil
}
