package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/lib/pq"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("order number already exists")
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByNumber(ctx context.Context, number string) (*models.Order, error)
	// LatestOrderNumber returns the highest stored number starting with
	// prefix, or "" when there is none.
	LatestOrderNumber(ctx context.Context, prefix string) (string, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	shippingAddress, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	var couponCode sql.NullString
	var couponPercent sql.NullInt32

	if order.Coupon != nil {
		couponCode = sql.NullString{String: order.Coupon.Code, Valid: true}
		couponPercent = sql.NullInt32{Int32: int32(order.Coupon.Percent), Valid: true}
	}

	query := `
		INSERT INTO orders (id, order_number, cart_id, status, items, coupon_code, coupon_percent,
			subtotal, shipping, tax, discount, total, savings, payment_method, shipping_address, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = r.DB.ExecContext(dbCtx, query, order.ID, order.OrderNumber, order.CartID, order.Status, items,
		couponCode, couponPercent, order.Totals.Subtotal, order.Totals.Shipping, order.Totals.Tax,
		order.Totals.Discount, order.Totals.Total, order.Totals.Savings, order.PaymentMethod,
		shippingAddress, order.PlacedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.OrderNumber)
		}

		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByNumber(ctx context.Context, number string) (*models.Order, error) {

	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, order_number, cart_id, status, items, coupon_code, coupon_percent,
			subtotal, shipping, tax, discount, total, savings, payment_method, shipping_address, placed_at
		FROM orders
		WHERE order_number = $1
	`

	var (
		order           models.Order
		items           []byte
		shippingAddress []byte
		couponCode      sql.NullString
		couponPercent   sql.NullInt32
	)

	err := r.DB.QueryRowContext(dbCtx, query, number).Scan(&order.ID, &order.OrderNumber, &order.CartID,
		&order.Status, &items, &couponCode, &couponPercent, &order.Totals.Subtotal, &order.Totals.Shipping,
		&order.Totals.Tax, &order.Totals.Discount, &order.Totals.Total, &order.Totals.Savings,
		&order.PaymentMethod, &shippingAddress, &order.PlacedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, number)
		}

		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	if err := json.Unmarshal(shippingAddress, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}

	if couponCode.Valid {
		order.Coupon = &models.AppliedCoupon{Code: couponCode.String, Percent: int(couponPercent.Int32)}
	}

	return &order, nil
}

// Longer suffixes sort first so HC-20261018-10000 beats HC-20261018-9999.
func (r *orderRepository) LatestOrderNumber(ctx context.Context, prefix string) (string, error) {

	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT order_number
		FROM orders
		WHERE order_number LIKE $1
		ORDER BY length(order_number) DESC, order_number DESC
		LIMIT 1
	`

	var number string
	err := r.DB.QueryRowContext(dbCtx, query, prefix+"%").Scan(&number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("failed to get the latest order number: %w", err)
	}

	return number, nil
}
