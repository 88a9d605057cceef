package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("Success - Wrapped Error Is Reachable", func(t *testing.T) {
		// Arrange
		cause := errors.New("coupon table missing")

		// Act
		err := appErrors.InvalidCouponError("Invalid promo code. Please try again.").WithError(cause).WithDetail("code XYZ99")

		// Assert
		assert.Equal(t, "Invalid promo code. Please try again.", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "code XYZ99", err.Detail)
		assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	})

	t.Run("Success - IsAppError Through Wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("service: %w", appErrors.InsufficientStockError("Only 3 left"))

		appErr, ok := appErrors.IsAppError(wrapped)

		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInsufficientStock, appErr.Code)
		assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	})

	t.Run("Failure - Plain Error", func(t *testing.T) {
		appErr, ok := appErrors.IsAppError(errors.New("boom"))

		assert.False(t, ok)
		assert.Nil(t, appErr)
	})

	t.Run("Success - Status Codes", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, appErrors.InvalidQuantityError("x").StatusCode)
		assert.Equal(t, http.StatusUnprocessableEntity, appErrors.EmptyCartError("x").StatusCode)
		assert.Equal(t, http.StatusMethodNotAllowed, appErrors.ReadOnlySourceError("x").StatusCode)
		assert.Equal(t, http.StatusTooManyRequests, appErrors.TooManyRequestsError("x").StatusCode)
		assert.Equal(t, http.StatusNotFound, appErrors.NotFoundError("x").StatusCode)
	})

	t.Run("Edge Case - Unknown Code Maps To 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, appErrors.StatusFor("SOMETHING_NEW"))
		assert.Equal(t, http.StatusBadGateway, appErrors.StatusFor(appErrors.ErrCodeThirdPartyError))
	})
}
