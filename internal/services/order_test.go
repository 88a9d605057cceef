package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/cart"
	appErrors "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/pricing"
	repository "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories"
	repoMocks "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories/mocks"
	service "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/services"
	svcMocks "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutRequest() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		ShippingAddress: models.ShippingAddress{
			FullName: "<b>Asha</b> Rao",
			Email:    "asha@example.com",
			Phone:    "9876543210",
			Address:  "12 MG Road",
			City:     "Pune",
			State:    "Maharashtra",
			Pincode:  "411001",
		},
		PaymentMethod: models.PaymentMethodUPI,
	}
}

func filledCart(t *testing.T, store *cart.Store) *cart.Cart {
	t.Helper()

	c := store.Create()
	require.NoError(t, c.Add(models.CartItem{ProductID: "1", Name: "Herbal Aloe Vera Face Cream", UnitPrice: decimal.RequireFromString("299.99"), Stock: 45, Quantity: 2}))
	require.NoError(t, c.Add(models.CartItem{ProductID: "7", Name: "Rose Water Toner", UnitPrice: decimal.RequireFromString("129.99"), Stock: 14}))

	return c
}

type orderFixture struct {
	store     *cart.Store
	repo      *repoMocks.OrderRepository
	publisher *svcMocks.OrderPublisher
	notifier  *svcMocks.NotificationService
	svc       service.OrderService
}

func setupOrderService(t *testing.T) orderFixture {
	f := orderFixture{
		store:     cart.NewStore(),
		repo:      repoMocks.NewOrderRepository(t),
		publisher: svcMocks.NewOrderPublisher(t),
		notifier:  svcMocks.NewNotificationService(t),
	}
	f.svc = service.NewOrderService(f.store, pricing.DefaultPolicy(), f.repo, f.publisher, f.notifier)
	f.repo.On("LatestOrderNumber", mock.Anything, mock.AnythingOfType("string")).Return("", nil).Maybe()

	return f
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Order Placed And Cart Emptied", func(t *testing.T) {
		// Arrange
		f := setupOrderService(t)
		c := filledCart(t, f.store)
		f.repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		f.publisher.On("PublishOrderPlaced", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		f.notifier.On("SendOrderConfirmation", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		// Act
		order, err := f.svc.PlaceOrder(ctx, c.ID(), checkoutRequest())

		// Assert
		require.NoError(t, err)
		assert.Regexp(t, `^HC-\d{8}-0001$`, order.OrderNumber)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, c.ID(), order.CartID)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, "729.97", order.Totals.Subtotal.StringFixed(2))
		assert.Equal(t, "Asha Rao", order.ShippingAddress.FullName)
		assert.Equal(t, models.PaymentMethodUPI, order.PaymentMethod)
		assert.Zero(t, c.ItemCount())
	})

	t.Run("Success - Numbers Increase Within A Day", func(t *testing.T) {
		// Arrange
		f := setupOrderService(t)
		f.repo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Twice()
		f.publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(nil).Twice()
		f.notifier.On("SendOrderConfirmation", mock.Anything, mock.Anything).Return(nil).Twice()

		// Act
		first, err := f.svc.PlaceOrder(ctx, filledCart(t, f.store).ID(), checkoutRequest())
		require.NoError(t, err)
		second, err := f.svc.PlaceOrder(ctx, filledCart(t, f.store).ID(), checkoutRequest())
		require.NoError(t, err)

		// Assert
		assert.Equal(t, first.OrderNumber[:len(first.OrderNumber)-4]+"0002", second.OrderNumber)
	})

	t.Run("Success - Publisher And Email Failures Are Ignored", func(t *testing.T) {
		// Arrange
		f := setupOrderService(t)
		c := filledCart(t, f.store)
		f.repo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
		f.publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
		f.notifier.On("SendOrderConfirmation", mock.Anything, mock.Anything).Return(errors.New("sendgrid 401")).Once()

		// Act
		order, err := f.svc.PlaceOrder(ctx, c.ID(), checkoutRequest())

		// Assert
		require.NoError(t, err)
		assert.NotEmpty(t, order.OrderNumber)
	})

	t.Run("Success - No Publisher Or Notifier", func(t *testing.T) {
		// Arrange
		store := cart.NewStore()
		repo := repository.NewMemoryOrderRepo()
		svc := service.NewOrderService(store, pricing.DefaultPolicy(), repo, nil, nil)
		c := filledCart(t, store)

		// Act
		order, err := svc.PlaceOrder(ctx, c.ID(), checkoutRequest())
		require.NoError(t, err)
		stored, getErr := svc.GetOrder(ctx, order.OrderNumber)

		// Assert
		require.NoError(t, getErr)
		assert.Equal(t, order.ID, stored.ID)
	})

	t.Run("Failure - Store Error Restores Cart", func(t *testing.T) {
		// Arrange
		f := setupOrderService(t)
		c := filledCart(t, f.store)
		dbErr := errors.New("connection reset")
		f.repo.On("CreateOrder", mock.Anything, mock.Anything).Return(dbErr).Once()

		// Act
		order, err := f.svc.PlaceOrder(ctx, c.ID(), checkoutRequest())

		// Assert
		assert.Nil(t, order)
		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 3, c.ItemCount())
		f.publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Number Lookup Error Restores Cart", func(t *testing.T) {
		// Arrange
		store := cart.NewStore()
		repo := repoMocks.NewOrderRepository(t)
		svc := service.NewOrderService(store, pricing.DefaultPolicy(), repo, nil, nil)
		c := filledCart(t, store)
		repo.On("LatestOrderNumber", mock.Anything, mock.Anything).Return("", errors.New("connection reset")).Once()

		// Act
		order, err := svc.PlaceOrder(ctx, c.ID(), checkoutRequest())

		// Assert
		assert.Nil(t, order)
		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
		assert.Equal(t, 3, c.ItemCount())
		repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		f := setupOrderService(t)
		c := f.store.Create()

		// Act
		_, err := f.svc.PlaceOrder(ctx, c.ID(), checkoutRequest())

		// Assert
		assertAppError(t, err, appErrors.ErrCodeEmptyCart)
	})

	t.Run("Failure - Unknown Cart", func(t *testing.T) {
		// Arrange
		f := setupOrderService(t)

		// Act
		_, err := f.svc.PlaceOrder(ctx, uuid.New(), checkoutRequest())

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestOrderService_OrderNumbers(t *testing.T) {
	ctx := context.Background()

	place := func(t *testing.T, svc service.OrderService, store *cart.Store) *models.Order {
		t.Helper()

		order, err := svc.PlaceOrder(ctx, filledCart(t, store).ID(), checkoutRequest())
		require.NoError(t, err)

		return order
	}

	t.Run("Success - Second Instance Continues The Day's Sequence", func(t *testing.T) {
		// Arrange
		repo := repository.NewMemoryOrderRepo()
		storeA, storeB := cart.NewStore(), cart.NewStore()
		first := service.NewOrderService(storeA, pricing.DefaultPolicy(), repo, nil, nil)
		restarted := service.NewOrderService(storeB, pricing.DefaultPolicy(), repo, nil, nil)

		// Act
		a := place(t, first, storeA)
		b := place(t, restarted, storeB)

		// Assert
		assert.Regexp(t, `^HC-\d{8}-0001$`, a.OrderNumber)
		assert.Equal(t, a.OrderNumber[:len(a.OrderNumber)-4]+"0002", b.OrderNumber)
	})

	t.Run("Success - Taken Number Is Skipped", func(t *testing.T) {
		// Arrange
		repo := repository.NewMemoryOrderRepo()
		storeA, storeB := cart.NewStore(), cart.NewStore()
		svcA := service.NewOrderService(storeA, pricing.DefaultPolicy(), repo, nil, nil)
		svcB := service.NewOrderService(storeB, pricing.DefaultPolicy(), repo, nil, nil)

		// Act
		place(t, svcA, storeA)
		place(t, svcB, storeB)
		third := place(t, svcA, storeA)

		// Assert
		assert.Regexp(t, `^HC-\d{8}-0003$`, third.OrderNumber)
		stored, err := repo.GetOrderByNumber(ctx, third.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, third.ID, stored.ID)
	})

	t.Run("Edge Case - Suffix Grows Past Four Digits", func(t *testing.T) {
		// Arrange
		store := cart.NewStore()
		repo := repoMocks.NewOrderRepository(t)
		svc := service.NewOrderService(store, pricing.DefaultPolicy(), repo, nil, nil)
		repo.On("LatestOrderNumber", mock.Anything, mock.AnythingOfType("string")).
			Return(func(_ context.Context, prefix string) string { return prefix + "9999" }, nil).Once()
		repo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		order := place(t, svc, store)

		// Assert
		assert.Regexp(t, `^HC-\d{8}-10000$`, order.OrderNumber)
	})

	t.Run("Failure - Every Number Taken", func(t *testing.T) {
		// Arrange
		store := cart.NewStore()
		repo := repoMocks.NewOrderRepository(t)
		svc := service.NewOrderService(store, pricing.DefaultPolicy(), repo, nil, nil)
		c := filledCart(t, store)
		repo.On("LatestOrderNumber", mock.Anything, mock.Anything).Return("", nil).Times(3)
		repo.On("CreateOrder", mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: taken", repository.ErrDuplicateOrder)).Times(3)

		// Act
		order, err := svc.PlaceOrder(ctx, c.ID(), checkoutRequest())

		// Assert
		assert.Nil(t, order)
		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
		assert.ErrorIs(t, err, repository.ErrDuplicateOrder)
		assert.Equal(t, 3, c.ItemCount())
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Order Found", func(t *testing.T) {
		// Arrange
		f := setupOrderService(t)
		expected := &models.Order{OrderNumber: "HC-20260301-0001"}
		f.repo.On("GetOrderByNumber", mock.Anything, "HC-20260301-0001").Return(expected, nil).Once()

		// Act
		order, err := f.svc.GetOrder(ctx, "HC-20260301-0001")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, order)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		f := setupOrderService(t)
		f.repo.On("GetOrderByNumber", mock.Anything, "HC-20260301-0009").
			Return(nil, fmt.Errorf("%w: HC-20260301-0009", repository.ErrOrderNotFound)).Once()

		// Act
		order, err := f.svc.GetOrder(ctx, "HC-20260301-0009")

		// Assert
		assert.Nil(t, order)
		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		f := setupOrderService(t)
		f.repo.On("GetOrderByNumber", mock.Anything, "HC-20260301-0001").Return(nil, errors.New("db down")).Once()

		// Act
		_, err := f.svc.GetOrder(ctx, "HC-20260301-0001")

		// Assert
		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}
