package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"

	"github.com/mkravets/shop-analytics/internal/domain"
)

// Read-only adapters over the storefront's own tables. The reporting engine
// never writes; checkout and catalog services own the schema.

func Connect(ctx context.Context, dsn string, logger *zap.Logger) *pgxpool.Pool {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		panic(err)
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newZapTracer(logger),
		LogLevel: tracelog.LogLevelWarn,
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		panic(err)
	}
	if err := pool.Ping(ctx); err != nil {
		panic(err)
	}
	return pool
}

type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo { return &OrderRepo{pool: pool} }

const orderColumns = `id, user_id, status, total_price, is_paid, is_delivered, created_at`

func (r *OrderRepo) All(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders`)
	if err != nil {
		return nil, err
	}
	orders, ids, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, orders, ids)
}

func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

func (r *OrderRepo) CreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE created_at >= $1
	`, since)
	if err != nil {
		return nil, err
	}
	orders, ids, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, orders, ids)
}

func (r *OrderRepo) Recent(ctx context.Context, limit int) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	orders, ids, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, orders, ids)
}

func scanOrders(rows pgx.Rows) ([]domain.Order, []string, error) {
	defer rows.Close()

	var (
		orders []domain.Order
		ids    []string
	)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalPrice,
			&o.IsPaid, &o.IsDelivered, &o.CreatedAt); err != nil {
			return nil, nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	return orders, ids, rows.Err()
}

func (r *OrderRepo) attachItems(ctx context.Context, orders []domain.Order, ids []string) ([]domain.Order, error) {
	if len(orders) == 0 {
		return orders, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id, price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderLineItem, len(orders))
	for rows.Next() {
		var (
			orderID string
			it      domain.OrderLineItem
		)
		if err := rows.Scan(&orderID, &it.ProductID, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo { return &ProductRepo{pool: pool} }

const productColumns = `id, seller_id, name, category, price, stock, status, created_at`

func (r *ProductRepo) All(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *ProductRepo) BySeller(ctx context.Context, sellerID string) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE seller_id = $1
	`, sellerID)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.SellerID, &p.Name, &p.Category,
			&p.Price, &p.Stock, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo { return &UserRepo{pool: pool} }

const userColumns = `id, name, email, role, created_at`

func (r *UserRepo) All(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *UserRepo) ByIDs(ctx context.Context, ids []string) (map[string]domain.User, error) {
	out := make(map[string]domain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, rows.Err()
}
