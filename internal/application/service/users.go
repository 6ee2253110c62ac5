package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/mkravets/shop-analytics/internal/analytics"
	"github.com/mkravets/shop-analytics/internal/domain"
)

const activeWindowDays = 30

// Users returns the admin user-engagement report.
func (s *Service) Users(ctx context.Context) (json.RawMessage, error) {
	return s.generate(ctx, ReportUsers, ReportUsers, func(ctx context.Context) (any, error) {
		return s.buildUsers(ctx)
	})
}

func (s *Service) buildUsers(ctx context.Context) (UsersReport, error) {
	rep := UsersReport{
		RegistrationsOverTime: []RegistrationPoint{},
		RoleDistribution:      []RoleCount{},
		TopEngagedUsers:       []EngagedUser{},
	}

	users, err := s.allUsers(ctx)
	if err != nil {
		return rep, err
	}
	rep.TotalUsers = len(users)

	// Signups grouped by calendar month over all time, sparse but sorted.
	regs := map[analytics.BucketKey]int{}
	roles := map[domain.Role]int{}
	names := make(map[string]string, len(users))
	for _, u := range users {
		regs[analytics.KeyAt(u.CreatedAt, analytics.Monthly)]++
		roles[u.Role]++
		names[u.ID] = u.Name
	}
	regKeys := make([]analytics.BucketKey, 0, len(regs))
	for k := range regs {
		regKeys = append(regKeys, k)
	}
	sort.Slice(regKeys, func(i, j int) bool { return regKeys[i].Before(regKeys[j]) })
	for _, k := range regKeys {
		rep.RegistrationsOverTime = append(rep.RegistrationsOverTime, RegistrationPoint{
			Date:  k.Label(analytics.Monthly),
			Count: regs[k],
		})
	}
	for _, r := range []domain.Role{domain.RoleUser, domain.RoleSeller, domain.RoleAdmin} {
		if n := roles[r]; n > 0 {
			rep.RoleDistribution = append(rep.RoleDistribution, RoleCount{Role: string(r), Count: n})
		}
	}

	since := s.clock.Now().AddDate(0, 0, -activeWindowDays)
	recent, err := s.ordersSince(ctx, since)
	if err != nil {
		return rep, err
	}
	active := map[string]struct{}{}
	for _, o := range recent {
		active[o.UserID] = struct{}{}
	}
	rep.ActiveUsersCount = len(active)

	orders, err := s.allOrders(ctx)
	if err != nil {
		return rep, err
	}
	type acc struct {
		count int
		spent float64
	}
	engagement := map[string]*acc{}
	for _, o := range orders {
		a := engagement[o.UserID]
		if a == nil {
			a = &acc{}
			engagement[o.UserID] = a
		}
		a.count++
		a.spent += o.TotalPrice
	}
	engaged := make([]EngagedUser, 0, len(engagement))
	for id, a := range engagement {
		engaged = append(engaged, EngagedUser{
			UserID:     id,
			Name:       names[id],
			OrderCount: a.count,
			TotalSpent: a.spent,
		})
	}
	sort.Slice(engaged, func(i, j int) bool {
		if engaged[i].OrderCount != engaged[j].OrderCount {
			return engaged[i].OrderCount > engaged[j].OrderCount
		}
		if engaged[i].TotalSpent != engaged[j].TotalSpent {
			return engaged[i].TotalSpent > engaged[j].TotalSpent
		}
		return engaged[i].UserID < engaged[j].UserID
	})
	if len(engaged) > 10 {
		engaged = engaged[:10]
	}
	rep.TopEngagedUsers = engaged

	return rep, nil
}
