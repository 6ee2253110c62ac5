package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/mkravets/shop-analytics/internal/domain"
)

const recentWindowDays = 7

// Overview returns the admin overview report: platform totals, the last
// week's orders and the status distribution.
func (s *Service) Overview(ctx context.Context) (json.RawMessage, error) {
	return s.generate(ctx, ReportOverview, ReportOverview, func(ctx context.Context) (any, error) {
		return s.buildOverview(ctx)
	})
}

func (s *Service) buildOverview(ctx context.Context) (OverviewReport, error) {
	rep := OverviewReport{
		RecentOrders:            []RecentOrder{},
		OrderStatusDistribution: []StatusCount{},
	}

	totalUsers, err := s.userCount(ctx)
	if err != nil {
		return rep, err
	}
	totalOrders, err := s.orderCount(ctx)
	if err != nil {
		return rep, err
	}
	orders, err := s.allOrders(ctx)
	if err != nil {
		return rep, err
	}

	rep.TotalUsers = totalUsers
	rep.TotalOrders = totalOrders

	// Revenue only counts paid orders; no paid orders means zero, not an error.
	statusCounts := map[string]int{}
	for _, o := range orders {
		if o.IsPaid {
			rep.TotalRevenue += o.TotalPrice
		}
		statusCounts[string(o.Status)]++
	}
	for _, st := range orderStatusNames() {
		if n := statusCounts[st]; n > 0 {
			rep.OrderStatusDistribution = append(rep.OrderStatusDistribution, StatusCount{Name: st, Value: n})
		}
	}

	since := s.clock.Now().AddDate(0, 0, -recentWindowDays)
	recent, err := s.ordersSince(ctx, since)
	if err != nil {
		return rep, err
	}
	rep.RecentOrdersCount = len(recent)

	sort.Slice(recent, func(i, j int) bool {
		if !recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].CreatedAt.After(recent[j].CreatedAt)
		}
		return recent[i].ID < recent[j].ID
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}

	ids := make([]string, 0, len(recent))
	for _, o := range recent {
		ids = append(ids, o.UserID)
	}
	customers, err := s.usersByIDs(ctx, ids)
	if err != nil {
		return rep, err
	}
	for _, o := range recent {
		ro := RecentOrder{
			ID:        o.ID,
			Total:     o.TotalPrice,
			Status:    string(o.Status),
			CreatedAt: o.CreatedAt,
		}
		if u, ok := customers[o.UserID]; ok {
			ro.Customer = u.Name
		}
		rep.RecentOrders = append(rep.RecentOrders, ro)
	}

	return rep, nil
}

func orderStatusNames() []string {
	out := make([]string, 0, len(domain.OrderStatuses))
	for _, st := range domain.OrderStatuses {
		out = append(out, string(st))
	}
	return out
}
