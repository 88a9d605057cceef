package repository_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	repository "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID:          uuid.New(),
		OrderNumber: "HC-20260301-0001",
		CartID:      uuid.New(),
		Status:      models.OrderStatusPending,
		Items: []models.CartItem{
			{ProductID: "1", Name: "Herbal Aloe Vera Face Cream", UnitPrice: decimal.RequireFromString("299.99"), Quantity: 2, Stock: 45},
		},
		Coupon: &models.AppliedCoupon{Code: "HERBAL10", Percent: 10},
		Totals: models.OrderTotals{
			Subtotal: decimal.RequireFromString("599.98"),
			Shipping: decimal.Zero,
			Tax:      decimal.RequireFromString("107.9964"),
			Discount: decimal.RequireFromString("59.998"),
			Total:    decimal.RequireFromString("647.9764"),
			Savings:  decimal.RequireFromString("109.998"),
		},
		PaymentMethod: models.PaymentMethodUPI,
		ShippingAddress: models.ShippingAddress{
			FullName: "Asha Rao", Email: "asha@example.com", Phone: "9876543210",
			Address: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001",
		},
		PlacedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepository(db)
	ctx := t.Context()

	selectSQL := regexp.QuoteMeta(`FROM orders WHERE order_number = $1`)

	t.Run("CreateOrder", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			order := sampleOrder()

			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders`)).
				WithArgs(order.ID, order.OrderNumber, order.CartID, order.Status, sqlmock.AnyArg(),
					"HERBAL10", 10, order.Totals.Subtotal, order.Totals.Shipping, order.Totals.Tax,
					order.Totals.Discount, order.Totals.Total, order.Totals.Savings, order.PaymentMethod,
					sqlmock.AnyArg(), order.PlacedAt).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.CreateOrder(ctx, order)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("insert failed")
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders`)).WillReturnError(dbError)

			// Act
			err := repo.CreateOrder(ctx, sampleOrder())

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Contains(t, err.Error(), "failed to insert order")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Duplicate Number", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders`)).
				WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

			// Act
			err := repo.CreateOrder(ctx, sampleOrder())

			// Assert
			assert.ErrorIs(t, err, repository.ErrDuplicateOrder)
			assert.Contains(t, err.Error(), "HC-20260301-0001")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("LatestOrderNumber", func(t *testing.T) {
		latestSQL := regexp.QuoteMeta(`SELECT order_number FROM orders WHERE order_number LIKE $1 ORDER BY length(order_number) DESC`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			rows := sqlmock.NewRows([]string{"order_number"}).AddRow("HC-20260301-10000")
			mock.ExpectQuery(latestSQL).WithArgs("HC-20260301-%").WillReturnRows(rows)

			// Act
			latest, err := repo.LatestOrderNumber(ctx, "HC-20260301-")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "HC-20260301-10000", latest)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("No Orders Yet", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(latestSQL).WithArgs("HC-20260302-%").WillReturnError(sql.ErrNoRows)

			// Act
			latest, err := repo.LatestOrderNumber(ctx, "HC-20260302-")

			// Assert
			require.NoError(t, err)
			assert.Empty(t, latest)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("connection reset")
			mock.ExpectQuery(latestSQL).WillReturnError(dbError)

			// Act
			_, err := repo.LatestOrderNumber(ctx, "HC-20260301-")

			// Assert
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetOrderByNumber", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			order := sampleOrder()
			items, _ := json.Marshal(order.Items)
			address, _ := json.Marshal(order.ShippingAddress)

			rows := sqlmock.NewRows([]string{"id", "order_number", "cart_id", "status", "items", "coupon_code", "coupon_percent",
				"subtotal", "shipping", "tax", "discount", "total", "savings", "payment_method", "shipping_address", "placed_at"}).
				AddRow(order.ID.String(), order.OrderNumber, order.CartID.String(), "pending", items, "HERBAL10", 10,
					"599.98", "0", "107.9964", "59.998", "647.9764", "109.998", "upi", address, order.PlacedAt)

			mock.ExpectQuery(selectSQL).WithArgs(order.OrderNumber).WillReturnRows(rows)

			// Act
			got, err := repo.GetOrderByNumber(ctx, order.OrderNumber)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, order.ID, got.ID)
			assert.Equal(t, models.PaymentMethodUPI, got.PaymentMethod)
			assert.Equal(t, order.ShippingAddress, got.ShippingAddress)
			require.Len(t, got.Items, 1)
			assert.Equal(t, 2, got.Items[0].Quantity)
			assert.Equal(t, &models.AppliedCoupon{Code: "HERBAL10", Percent: 10}, got.Coupon)
			assert.True(t, order.Totals.Total.Equal(got.Totals.Total))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(selectSQL).WithArgs("HC-20260301-9999").WillReturnError(sql.ErrNoRows)

			// Act
			got, err := repo.GetOrderByNumber(ctx, "HC-20260301-9999")

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, repository.ErrOrderNotFound)
			assert.Nil(t, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
