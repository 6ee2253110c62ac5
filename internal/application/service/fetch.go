package service

import (
	"context"
	"time"

	"github.com/mkravets/shop-analytics/internal/domain"
	"github.com/mkravets/shop-analytics/internal/pkg/retry"
)

// Repository reads, each wrapped in the retry policy.

func (s *Service) allOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := retry.Do(ctx, s.opts.Retry, func() error {
		var err error
		out, err = s.repos.Orders.All(ctx)
		return err
	})
	return out, err
}

func (s *Service) orderCount(ctx context.Context) (int, error) {
	var n int
	err := retry.Do(ctx, s.opts.Retry, func() error {
		var err error
		n, err = s.repos.Orders.Count(ctx)
		return err
	})
	return n, err
}

func (s *Service) ordersSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	var out []domain.Order
	err := retry.Do(ctx, s.opts.Retry, func() error {
		var err error
		out, err = s.repos.Orders.CreatedSince(ctx, since)
		return err
	})
	return out, err
}

func (s *Service) recentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	var out []domain.Order
	err := retry.Do(ctx, s.opts.Retry, func() error {
		var err error
		out, err = s.repos.Orders.Recent(ctx, limit)
		return err
	})
	return out, err
}

func (s *Service) allProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := retry.Do(ctx, s.opts.Retry, func() error {
		var err error
		out, err = s.repos.Products.All(ctx)
		return err
	})
	return out, err
}

func (s *Service) sellerProducts(ctx context.Context, sellerID string) ([]domain.Product, error) {
	var out []domain.Product
	err := retry.Do(ctx, s.opts.Retry, func() error {
		var err error
		out, err = s.repos.Products.BySeller(ctx, sellerID)
		return err
	})
	return out, err
}

func (s *Service) allUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := retry.Do(ctx, s.opts.Retry, func() error {
		var err error
		out, err = s.repos.Users.All(ctx)
		return err
	})
	return out, err
}

func (s *Service) userCount(ctx context.Context) (int, error) {
	var n int
	err := retry.Do(ctx, s.opts.Retry, func() error {
		var err error
		n, err = s.repos.Users.Count(ctx)
		return err
	})
	return n, err
}

func (s *Service) usersByIDs(ctx context.Context, ids []string) (map[string]domain.User, error) {
	if len(ids) == 0 {
		return map[string]domain.User{}, nil
	}
	var out map[string]domain.User
	err := retry.Do(ctx, s.opts.Retry, func() error {
		var err error
		out, err = s.repos.Users.ByIDs(ctx, ids)
		return err
	})
	return out, err
}
