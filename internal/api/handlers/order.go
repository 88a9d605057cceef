package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	service "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/services"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Place an order from a cart
//	@Description	Validates the shipping address, snapshots the cart lines and totals, stores the order and empties the cart.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Cart ID (UUID)"	Format(uuid)
//	@Param			order	body		models.CheckoutRequest	true	"Shipping address and payment method"
//	@Success		201		{object}	models.Order			"Order placed"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		422		{object}	response.ErrorResponse	"Cart is empty"
//	@Failure		404		{object}	response.ErrorResponse	"Cart not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/api/v1/carts/{id}/checkout [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("cartId", cartID.String()))

		// Decode the request body, validate
		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		order, err := h.orderService.PlaceOrder(r.Context(), cartID, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed successfully", slog.String("orderNumber", order.OrderNumber))
		response.Success(w, http.StatusCreated, order)
	}
}

// GetOrder godoc
//	@Summary	Get an order by its order number
//	@Tags		Orders
//	@Produce	json
//	@Param		orderNumber	path		string	true	"Order number (HC-YYYYMMDD-NNNN)"
//	@Success	200			{object}	models.Order
//	@Failure	404			{object}	response.ErrorResponse	"Order not found"
//	@Router		/api/v1/orders/{orderNumber} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderNumber, err := pathValue(r, "orderNumber")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("orderNumber", orderNumber))

		order, err := h.orderService.GetOrder(r.Context(), orderNumber)
		if err != nil {
			logger.Error("Failed to get order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order retrieved successfully")
		response.Success(w, http.StatusOK, order)
	}
}
