package domain

import (
	"context"
	"time"
)

// Repository ports. The record store is an external collaborator; the
// reporting engine only ever reads through these.

type OrderRepository interface {
	All(ctx context.Context) ([]Order, error)
	Count(ctx context.Context) (int, error)
	CreatedSince(ctx context.Context, since time.Time) ([]Order, error)
	// Recent returns orders newest first, at most limit.
	Recent(ctx context.Context, limit int) ([]Order, error)
}

type ProductRepository interface {
	All(ctx context.Context) ([]Product, error)
	BySeller(ctx context.Context, sellerID string) ([]Product, error)
}

type UserRepository interface {
	All(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
	ByIDs(ctx context.Context, ids []string) (map[string]User, error)
}
