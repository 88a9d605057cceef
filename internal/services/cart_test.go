package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/cart"
	appErrors "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/pricing"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories/mocks"
	service "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartService(t *testing.T, opts ...cart.Option) (service.CartService, *mocks.RateLimitRepository) {
	t.Helper()

	limiter := mocks.NewRateLimitRepository(t)
	svc := service.NewCartService(
		cart.NewStore(opts...),
		service.NewCatalogService(mockCatalog()),
		pricing.DefaultPolicy(),
		pricing.DefaultCoupons(),
		limiter,
	)

	return svc, limiter
}

func newCart(t *testing.T, svc service.CartService) uuid.UUID {
	t.Helper()

	view, err := svc.CreateCart(context.Background())
	require.NoError(t, err)

	return view.ID
}

func TestCartService_CreateAndGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - New Cart Is Empty", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t)

		// Act
		created, err := svc.CreateCart(ctx)
		require.NoError(t, err)
		fetched, err := svc.GetCart(ctx, created.ID)

		// Assert
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Empty(t, fetched.Items)
		assert.True(t, fetched.Totals.Total.Equal(pricing.DefaultPolicy().FlatShippingFee))
	})

	t.Run("Failure - Unknown Cart", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t)

		// Act
		view, err := svc.GetCart(ctx, uuid.New())

		// Assert
		assert.Nil(t, view)
		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Success - Saved Item Availability Refreshed", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t, cart.WithStockLimit(false))
		id := newCart(t, svc)
		_, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "4"})
		require.NoError(t, err)
		saved, err := svc.SaveForLater(ctx, id, models.LineRef{ProductID: "4"})
		require.NoError(t, err)
		require.True(t, saved.Saved[0].InStock)

		// Act
		view, err := svc.GetCart(ctx, id)

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Saved, 1)
		assert.False(t, view.Saved[0].InStock)
		assert.Zero(t, view.Saved[0].Stock)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Snapshot Of Product", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t, cart.WithStockLimit(true))
		id := newCart(t, svc)

		// Act
		view, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "1", Quantity: 2})

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "Herbal Aloe Vera Face Cream", view.Items[0].Name)
		assert.Equal(t, 2, view.ItemCount)
		assert.Equal(t, "599.98", view.Totals.Subtotal.StringFixed(2))
		assert.True(t, view.Totals.Shipping.IsZero())
		assert.Equal(t, "₹599.98", view.Display.Subtotal)
	})

	t.Run("Success - Variant Price Used", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t, cart.WithStockLimit(true))
		id := newCart(t, svc)

		// Act
		view, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "1", Variant: "100ML"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "100ml", view.Items[0].Variant)
		assert.Equal(t, "499.99", view.Items[0].UnitPrice.StringFixed(2))
	})

	t.Run("Success - Second Variant Keeps Its Own Price", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t, cart.WithStockLimit(true))
		id := newCart(t, svc)
		_, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "1", Variant: "50ml"})
		require.NoError(t, err)

		// Act
		view, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "1", Variant: "200ml"})

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		assert.Equal(t, "50ml", view.Items[0].Variant)
		assert.Equal(t, "299.99", view.Items[0].UnitPrice.StringFixed(2))
		assert.Equal(t, "200ml", view.Items[1].Variant)
		assert.Equal(t, "799.99", view.Items[1].UnitPrice.StringFixed(2))
		assert.Equal(t, "1099.98", view.Totals.Subtotal.StringFixed(2))
	})

	t.Run("Success - Variant Line Edited Alone", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t, cart.WithStockLimit(true))
		id := newCart(t, svc)
		_, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "1", Variant: "50ml"})
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "1", Variant: "100ml"})
		require.NoError(t, err)

		// Act
		view, err := svc.RemoveItem(ctx, id, models.LineRef{ProductID: "1", Variant: "50ml"})

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "100ml", view.Items[0].Variant)
	})

	t.Run("Failure - Unknown Variant", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t)
		id := newCart(t, svc)

		// Act
		view, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "1", Variant: "1l"})

		// Assert
		assert.Nil(t, view)
		assertAppError(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t)
		id := newCart(t, svc)

		// Act
		_, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "404"})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Above Stock", func(t *testing.T) {
		// Arrange
		svc, _ := setupCartService(t, cart.WithStockLimit(true))
		id := newCart(t, svc)

		// Act
		_, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "5", Quantity: 4})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeInsufficientStock)
		assert.ErrorIs(t, err, cart.ErrInsufficientStock)
	})
}

func TestCartService_LineEdits(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (service.CartService, uuid.UUID) {
		svc, _ := setupCartService(t, cart.WithStockLimit(true))
		id := newCart(t, svc)
		_, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "3"})
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "7"})
		require.NoError(t, err)
		return svc, id
	}

	t.Run("Success - Update Quantity", func(t *testing.T) {
		// Arrange
		svc, id := setup(t)

		// Act
		view, err := svc.UpdateQuantity(ctx, id, models.LineRef{ProductID: "3"}, 3)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 4, view.ItemCount)
	})

	t.Run("Failure - Zero Quantity Leaves Cart Alone", func(t *testing.T) {
		// Arrange
		svc, id := setup(t)

		// Act
		_, err := svc.UpdateQuantity(ctx, id, models.LineRef{ProductID: "3"}, 0)
		view, getErr := svc.GetCart(ctx, id)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeInvalidQuantity)
		require.NoError(t, getErr)
		assert.Equal(t, 2, view.ItemCount)
	})

	t.Run("Success - Remove Item", func(t *testing.T) {
		// Arrange
		svc, id := setup(t)

		// Act
		view, err := svc.RemoveItem(ctx, id, models.LineRef{ProductID: "7"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"3"}, []string{view.Items[0].ProductID})
	})

	t.Run("Failure - Remove Missing Item", func(t *testing.T) {
		// Arrange
		svc, id := setup(t)

		// Act
		_, err := svc.RemoveItem(ctx, id, models.LineRef{ProductID: "1"})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Success - Save Move And Remove Saved", func(t *testing.T) {
		// Arrange
		svc, id := setup(t)

		// Act
		saved, err := svc.SaveForLater(ctx, id, models.LineRef{ProductID: "3"})
		require.NoError(t, err)
		moved, err := svc.MoveToCart(ctx, id, models.LineRef{ProductID: "3"})
		require.NoError(t, err)
		_, err = svc.SaveForLater(ctx, id, models.LineRef{ProductID: "7"})
		require.NoError(t, err)
		final, err := svc.RemoveSaved(ctx, id, models.LineRef{ProductID: "7"})

		// Assert
		require.NoError(t, err)
		assert.Len(t, saved.Saved, 1)
		assert.Len(t, moved.Items, 2)
		assert.Empty(t, final.Saved)
		assert.Len(t, final.Items, 1)
	})

	t.Run("Failure - Move Unknown Saved Item", func(t *testing.T) {
		// Arrange
		svc, id := setup(t)

		// Act
		_, err := svc.MoveToCart(ctx, id, models.LineRef{ProductID: "3"})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound)
		assert.ErrorIs(t, err, cart.ErrSavedNotFound)
	})
}

func TestCartService_Coupons(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (service.CartService, *mocks.RateLimitRepository, uuid.UUID) {
		svc, limiter := setupCartService(t)
		id := newCart(t, svc)
		_, err := svc.AddItem(ctx, id, &models.AddItemRequest{ProductID: "1", Quantity: 2})
		require.NoError(t, err)
		return svc, limiter, id
	}

	t.Run("Success - Coupon Applied", func(t *testing.T) {
		// Arrange
		svc, limiter, id := setup(t)
		limiter.On("CheckCouponRateLimit", mock.Anything, id.String()).Return(true, 4, 0, nil).Once()

		// Act
		resp, err := svc.ApplyCoupon(ctx, id, " save10 ")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", resp.Code)
		assert.Equal(t, 10, resp.Percent)
		assert.Equal(t, "60.00", resp.DiscountAmount.StringFixed(2))
		assert.Equal(t, "Coupon SAVE10 applied! You saved ₹60.00", resp.Message)
		require.NotNil(t, resp.Cart.Coupon)
		assert.Equal(t, "60.00", resp.Cart.Totals.Discount.StringFixed(2))
	})

	t.Run("Failure - Invalid Code", func(t *testing.T) {
		// Arrange
		svc, limiter, id := setup(t)
		limiter.On("CheckCouponRateLimit", mock.Anything, id.String()).Return(true, 4, 0, nil).Once()

		// Act
		resp, err := svc.ApplyCoupon(ctx, id, "FREE50")

		// Assert
		assert.Nil(t, resp)
		assertAppError(t, err, appErrors.ErrCodeInvalidCoupon)
		assert.ErrorIs(t, err, pricing.ErrInvalidCoupon)
		assert.Equal(t, "Invalid promo code. Please try again.", err.Error())
	})

	t.Run("Failure - Too Many Attempts", func(t *testing.T) {
		// Arrange
		svc, limiter, id := setup(t)
		limiter.On("CheckCouponRateLimit", mock.Anything, id.String()).Return(false, 0, 120, nil).Once()

		// Act
		resp, err := svc.ApplyCoupon(ctx, id, "SAVE10")

		// Assert
		assert.Nil(t, resp)
		assertAppError(t, err, appErrors.ErrCodeTooManyRequests)
		appErr, _ := appErrors.IsAppError(err)
		assert.Equal(t, "Try again in 120 seconds", appErr.Detail)
	})

	t.Run("Edge Case - Limiter Outage Lets Attempt Through", func(t *testing.T) {
		// Arrange
		svc, limiter, id := setup(t)
		limiter.On("CheckCouponRateLimit", mock.Anything, id.String()).Return(false, 0, 0, errors.New("redis down")).Once()

		// Act
		resp, err := svc.ApplyCoupon(ctx, id, "HERBAL15")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 15, resp.Percent)
	})

	t.Run("Success - Remove Coupon", func(t *testing.T) {
		// Arrange
		svc, limiter, id := setup(t)
		limiter.On("CheckCouponRateLimit", mock.Anything, id.String()).Return(true, 4, 0, nil).Once()
		_, err := svc.ApplyCoupon(ctx, id, "FIRST20")
		require.NoError(t, err)

		// Act
		view, err := svc.RemoveCoupon(ctx, id)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, view.Coupon)
		assert.True(t, view.Totals.Discount.IsZero())
	})
}
