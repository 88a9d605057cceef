package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	service "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/services"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// cartLine resolves the cart id and product id path values shared by the
// line-level routes.
func cartLine(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, models.LineRef, bool) {
	cartID, err := utils.ParseID(r, "id")
	if err != nil {
		logger.Warn("Invalid cart id", slog.String("error", err.Error()))
		response.Error(w, err)
		return uuid.Nil, models.LineRef{}, false
	}

	productID, err := pathValue(r, "productId")
	if err != nil {
		response.Error(w, err)
		return uuid.Nil, models.LineRef{}, false
	}

	line := models.LineRef{
		ProductID: productID,
		Variant:   strings.TrimSpace(r.URL.Query().Get("variant")),
	}

	return cartID, line, true
}

// CreateCart godoc
//	@Summary	Start a new cart session
//	@Tags		Carts
//	@Produce	json
//	@Success	201	{object}	models.CartView
//	@Router		/api/v1/carts [post]
func (h *CartHandler) CreateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cart, err := h.cartService.CreateCart(r.Context())
		if err != nil {
			logger.Error("Failed to create cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart created", slog.String("cartId", cart.ID.String()))
		response.Success(w, http.StatusCreated, cart)
	}
}

// GetCart godoc
//	@Summary	Get a cart with its totals
//	@Tags		Carts
//	@Produce	json
//	@Param		id	path		string	true	"Cart ID (UUID)"	Format(uuid)
//	@Success	200	{object}	models.CartView
//	@Failure	400	{object}	response.ErrorResponse	"Invalid cart ID format"
//	@Failure	404	{object}	response.ErrorResponse	"Cart not found"
//	@Router		/api/v1/carts/{id} [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), cartID)
		if err != nil {
			logger.Error("Failed to get cart", slog.String("cartId", cartID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary	Add a product to the cart
//	@Tags		Carts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Cart ID (UUID)"	Format(uuid)
//	@Param		item	body		models.AddItemRequest	true	"Product, optional variant and quantity"
//	@Success	200		{object}	models.CartView
//	@Failure	400		{object}	response.ErrorResponse	"Validation error or unknown variant"
//	@Failure	404		{object}	response.ErrorResponse	"Cart or product not found"
//	@Failure	409		{object}	response.ErrorResponse	"Insufficient stock"
//	@Router		/api/v1/carts/{id}/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		logger = logger.With(slog.String("cartId", cartID.String()), slog.String("productId", req.ProductID))

		cart, err := h.cartService.AddItem(r.Context(), cartID, &req)
		if err != nil {
			logger.Error("Failed to add item", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int("itemCount", cart.ItemCount))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//	@Summary	Set the quantity of a cart line
//	@Tags		Carts
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string							true	"Cart ID (UUID)"	Format(uuid)
//	@Param		productId	path		string							true	"Product ID"
//	@Param		variant		query		string							false	"Variant label"
//	@Param		quantity	body		models.UpdateQuantityRequest	true	"New quantity (>= 1)"
//	@Success	200			{object}	models.CartView
//	@Failure	400			{object}	response.ErrorResponse	"Quantity below 1"
//	@Failure	409			{object}	response.ErrorResponse	"Insufficient stock"
//	@Router		/api/v1/carts/{id}/items/{productId} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, line, ok := cartLine(w, r, logger)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), cartID, line, req.Quantity)
		if err != nil {
			logger.Warn("Failed to update quantity",
				slog.String("cartId", cartID.String()),
				slog.String("productId", line.ProductID),
				slog.String("variant", line.Variant),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//	@Summary	Remove a cart line
//	@Tags		Carts
//	@Produce	json
//	@Param		id			path		string	true	"Cart ID (UUID)"	Format(uuid)
//	@Param		productId	path		string	true	"Product ID"
//	@Param		variant		query		string	false	"Variant label"
//	@Success	200			{object}	models.CartView
//	@Failure	404			{object}	response.ErrorResponse	"Cart or line not found"
//	@Router		/api/v1/carts/{id}/items/{productId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return h.lineAction("remove", h.cartService.RemoveItem)
}

// SaveForLater godoc
//	@Summary	Move a cart line to the saved-for-later list
//	@Tags		Carts
//	@Produce	json
//	@Param		id			path		string	true	"Cart ID (UUID)"	Format(uuid)
//	@Param		productId	path		string	true	"Product ID"
//	@Param		variant		query		string	false	"Variant label"
//	@Success	200			{object}	models.CartView
//	@Router		/api/v1/carts/{id}/items/{productId}/save [post]
func (h *CartHandler) SaveForLater() http.HandlerFunc {
	return h.lineAction("save", h.cartService.SaveForLater)
}

// MoveToCart godoc
//	@Summary	Move a saved item back into the cart
//	@Tags		Carts
//	@Produce	json
//	@Param		id			path		string	true	"Cart ID (UUID)"	Format(uuid)
//	@Param		productId	path		string	true	"Product ID"
//	@Param		variant		query		string	false	"Variant label"
//	@Success	200			{object}	models.CartView
//	@Failure	409			{object}	response.ErrorResponse	"Saved item is out of stock"
//	@Router		/api/v1/carts/{id}/saved/{productId}/move [post]
func (h *CartHandler) MoveToCart() http.HandlerFunc {
	return h.lineAction("move", h.cartService.MoveToCart)
}

// RemoveSaved godoc
//	@Summary	Drop a saved-for-later item
//	@Tags		Carts
//	@Produce	json
//	@Param		id			path		string	true	"Cart ID (UUID)"	Format(uuid)
//	@Param		productId	path		string	true	"Product ID"
//	@Param		variant		query		string	false	"Variant label"
//	@Success	200			{object}	models.CartView
//	@Router		/api/v1/carts/{id}/saved/{productId} [delete]
func (h *CartHandler) RemoveSaved() http.HandlerFunc {
	return h.lineAction("remove saved", h.cartService.RemoveSaved)
}

type lineFunc func(ctx context.Context, cartID uuid.UUID, line models.LineRef) (*models.CartView, error)

func (h *CartHandler) lineAction(action string, fn lineFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("action", action))

		cartID, line, ok := cartLine(w, r, logger)
		if !ok {
			return
		}

		cart, err := fn(r.Context(), cartID, line)
		if err != nil {
			logger.Warn("Cart line action failed",
				slog.String("cartId", cartID.String()),
				slog.String("productId", line.ProductID),
				slog.String("variant", line.Variant),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ApplyCoupon godoc
//	@Summary	Apply a coupon code
//	@Tags		Carts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Cart ID (UUID)"	Format(uuid)
//	@Param		coupon	body		models.ApplyCouponRequest	true	"Coupon code"
//	@Success	200		{object}	models.CouponResponse
//	@Failure	422		{object}	response.ErrorResponse	"Invalid coupon code"
//	@Failure	429		{object}	response.ErrorResponse	"Too many coupon attempts"
//	@Router		/api/v1/carts/{id}/coupon [post]
func (h *CartHandler) ApplyCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.ApplyCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid coupon input")
			return
		}

		result, err := h.cartService.ApplyCoupon(r.Context(), cartID, req.Code)
		if err != nil {
			logger.Warn("Coupon rejected", slog.String("cartId", cartID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Coupon applied", slog.String("cartId", cartID.String()), slog.String("code", result.Code))
		response.Success(w, http.StatusOK, result)
	}
}

// RemoveCoupon godoc
//	@Summary	Remove the applied coupon
//	@Tags		Carts
//	@Produce	json
//	@Param		id	path		string	true	"Cart ID (UUID)"	Format(uuid)
//	@Success	200	{object}	models.CartView
//	@Router		/api/v1/carts/{id}/coupon [delete]
func (h *CartHandler) RemoveCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.RemoveCoupon(r.Context(), cartID)
		if err != nil {
			logger.Error("Failed to remove coupon", slog.String("cartId", cartID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
