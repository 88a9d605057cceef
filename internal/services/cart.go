package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/cart"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/metrics"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/pricing"
	repository "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	CreateCart(ctx context.Context) (*models.CartView, error)
	GetCart(ctx context.Context, cartID uuid.UUID) (*models.CartView, error)
	AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddItemRequest) (*models.CartView, error)
	UpdateQuantity(ctx context.Context, cartID uuid.UUID, line models.LineRef, quantity int) (*models.CartView, error)
	RemoveItem(ctx context.Context, cartID uuid.UUID, line models.LineRef) (*models.CartView, error)
	SaveForLater(ctx context.Context, cartID uuid.UUID, line models.LineRef) (*models.CartView, error)
	MoveToCart(ctx context.Context, cartID uuid.UUID, line models.LineRef) (*models.CartView, error)
	RemoveSaved(ctx context.Context, cartID uuid.UUID, line models.LineRef) (*models.CartView, error)
	ApplyCoupon(ctx context.Context, cartID uuid.UUID, code string) (*models.CouponResponse, error)
	RemoveCoupon(ctx context.Context, cartID uuid.UUID) (*models.CartView, error)
}

type cartService struct {
	store   *cart.Store
	catalog CatalogService
	policy  pricing.Policy
	coupons pricing.CouponTable
	limiter repository.RateLimitRepository
}

func NewCartService(store *cart.Store, catalogService CatalogService, policy pricing.Policy, coupons pricing.CouponTable, limiter repository.RateLimitRepository) CartService {
	return &cartService{
		store:   store,
		catalog: catalogService,
		policy:  policy,
		coupons: coupons,
		limiter: limiter,
	}
}

func (s *cartService) load(cartID uuid.UUID) (*cart.Cart, error) {
	c, ok := s.store.Get(cartID)
	if !ok {
		return nil, errors.NotFoundError("Cart not found")
	}

	return c, nil
}

func (s *cartService) view(c *cart.Cart) *models.CartView {
	view := c.View(s.policy)
	return &view
}

// cartError maps the cart package's sentinel errors onto API errors.
func cartError(err error) error {
	switch {
	case stdErrors.Is(err, cart.ErrInvalidQuantity):
		return errors.InvalidQuantityError("Quantity must be at least 1").WithError(err)
	case stdErrors.Is(err, cart.ErrInsufficientStock):
		return errors.InsufficientStockError("Requested quantity exceeds available stock").WithError(err)
	case stdErrors.Is(err, cart.ErrItemNotFound):
		return errors.NotFoundError("Item not in cart").WithError(err)
	case stdErrors.Is(err, cart.ErrSavedNotFound):
		return errors.NotFoundError("Item not in saved list").WithError(err)
	case stdErrors.Is(err, cart.ErrNotInStock):
		return errors.InsufficientStockError("Saved item is out of stock").WithError(err)
	case stdErrors.Is(err, cart.ErrEmptyCart):
		return errors.EmptyCartError("Cart is empty").WithError(err)
	default:
		return errors.InternalError("Failed to update cart").WithError(err)
	}
}

func (s *cartService) CreateCart(ctx context.Context) (*models.CartView, error) {
	c := s.store.Create()
	metrics.SetActiveCarts(s.store.Len())

	middleware.LoggerFromContext(ctx).Info("Cart created", slog.String("cartId", c.ID().String()))

	return s.view(c), nil
}

// GetCart refreshes the in-stock flag of saved items before rendering.
func (s *cartService) GetCart(ctx context.Context, cartID uuid.UUID) (*models.CartView, error) {
	c, err := s.load(cartID)
	if err != nil {
		return nil, err
	}

	view := c.View(s.policy)
	if len(view.Saved) == 0 {
		return &view, nil
	}

	stock := make(map[string]int, len(view.Saved))
	for _, saved := range view.Saved {
		p, err := s.catalog.GetProduct(ctx, saved.ProductID)
		if err != nil {
			if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeNotFound {
				stock[saved.ProductID] = 0
			}
			continue
		}
		stock[saved.ProductID] = p.Stock
	}

	c.MarkAvailability(stock)

	return s.view(c), nil
}

// AddItem snapshots the product as it is now; later catalog price changes do
// not reach the line. Each variant is its own line at its own price.
func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddItemRequest) (*models.CartView, error) {
	c, err := s.load(cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Image:     product.Image,
		UnitPrice: product.Price,
		Stock:     product.Stock,
		Quantity:  req.Quantity,
	}

	if req.Variant != "" {
		found := false
		for _, v := range product.Variants {
			if strings.EqualFold(v.Label, req.Variant) {
				item.Variant = v.Label
				item.UnitPrice = v.Price
				found = true
				break
			}
		}

		if !found {
			return nil, errors.BadRequestError(fmt.Sprintf("Unknown variant %q", req.Variant))
		}
	}

	if err := c.Add(item); err != nil {
		return nil, cartError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Item added to cart",
		slog.String("cartId", cartID.String()),
		slog.String("productId", product.ID),
		slog.String("variant", item.Variant))

	return s.view(c), nil
}

func (s *cartService) mutate(cartID uuid.UUID, op func(c *cart.Cart) error) (*models.CartView, error) {
	c, err := s.load(cartID)
	if err != nil {
		return nil, err
	}

	if err := op(c); err != nil {
		return nil, cartError(err)
	}

	return s.view(c), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, cartID uuid.UUID, line models.LineRef, quantity int) (*models.CartView, error) {
	return s.mutate(cartID, func(c *cart.Cart) error {
		return c.SetQuantity(line.ProductID, line.Variant, quantity)
	})
}

func (s *cartService) RemoveItem(ctx context.Context, cartID uuid.UUID, line models.LineRef) (*models.CartView, error) {
	return s.mutate(cartID, func(c *cart.Cart) error {
		return c.Remove(line.ProductID, line.Variant)
	})
}

func (s *cartService) SaveForLater(ctx context.Context, cartID uuid.UUID, line models.LineRef) (*models.CartView, error) {
	return s.mutate(cartID, func(c *cart.Cart) error {
		return c.SaveForLater(line.ProductID, line.Variant)
	})
}

func (s *cartService) MoveToCart(ctx context.Context, cartID uuid.UUID, line models.LineRef) (*models.CartView, error) {
	return s.mutate(cartID, func(c *cart.Cart) error {
		return c.MoveToCart(line.ProductID, line.Variant)
	})
}

func (s *cartService) RemoveSaved(ctx context.Context, cartID uuid.UUID, line models.LineRef) (*models.CartView, error) {
	return s.mutate(cartID, func(c *cart.Cart) error {
		return c.RemoveSaved(line.ProductID, line.Variant)
	})
}

// ApplyCoupon replaces any coupon already on the cart. Attempts are rate
// limited per cart; a limiter outage lets the attempt through.
func (s *cartService) ApplyCoupon(ctx context.Context, cartID uuid.UUID, code string) (*models.CouponResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	c, err := s.load(cartID)
	if err != nil {
		return nil, err
	}

	allowed, _, retryAfter, err := s.limiter.CheckCouponRateLimit(ctx, cartID.String())
	if err != nil {
		logger.Warn("Coupon rate limiter unavailable", slog.String("error", err.Error()))
	} else if !allowed {
		return nil, errors.TooManyRequestsError("Too many promo code attempts").
			WithDetail(fmt.Sprintf("Try again in %d seconds", retryAfter))
	}

	result, err := c.ApplyCoupon(s.coupons, code)
	if err != nil {
		metrics.CouponApplied(false)
		logger.Info("Coupon rejected", slog.String("cartId", cartID.String()))

		return nil, errors.InvalidCouponError(pricing.CouponErrorMessage(err)).WithError(err)
	}

	metrics.CouponApplied(true)
	logger.Info("Coupon applied", slog.String("cartId", cartID.String()), slog.String("code", result.Coupon.Code))

	return &models.CouponResponse{
		Code:           result.Coupon.Code,
		Percent:        result.Coupon.Percent,
		DiscountAmount: result.DiscountAmount,
		Message:        result.Message,
		Cart:           s.view(c),
	}, nil
}

func (s *cartService) RemoveCoupon(ctx context.Context, cartID uuid.UUID) (*models.CartView, error) {
	return s.mutate(cartID, func(c *cart.Cart) error {
		c.ClearCoupon()
		return nil
	})
}
