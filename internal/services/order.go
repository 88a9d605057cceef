package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/cart"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/metrics"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/pricing"
	repository "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils"
	"github.com/google/uuid"
)

// OrderPublisher announces placed orders to downstream consumers.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *models.Order) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, cartID uuid.UUID, req *models.CheckoutRequest) (*models.Order, error)
	GetOrder(ctx context.Context, orderNumber string) (*models.Order, error)
}

type orderService struct {
	store     *cart.Store
	policy    pricing.Policy
	repo      repository.OrderRepository
	publisher OrderPublisher
	notifier  NotificationService
	numbers   *orderNumbers
}

// NewOrderService wires checkout. publisher and notifier may be nil when
// the broker or email provider is not configured.
func NewOrderService(store *cart.Store, policy pricing.Policy, repo repository.OrderRepository, publisher OrderPublisher, notifier NotificationService) OrderService {
	return &orderService{
		store:     store,
		policy:    policy,
		repo:      repo,
		publisher: publisher,
		notifier:  notifier,
		numbers:   newOrderNumbers(time.Now),
	}
}

// orderNumberAttempts bounds how often checkout retries after another
// instance stored the number it was handed.
const orderNumberAttempts = 3

// orderNumbers hands out HC-YYYYMMDD-NNNN numbers. The counter is seeded
// from the highest stored number for the day, so a restart or a second
// instance carries on from there. The suffix grows past four digits.
type orderNumbers struct {
	mu    sync.Mutex
	day   string
	count int
	now   func() time.Time
}

func newOrderNumbers(now func() time.Time) *orderNumbers {
	return &orderNumbers{now: now}
}

func orderPrefix(day string) string {
	return "HC-" + day + "-"
}

// next reserves the following number. resync reloads the stored maximum
// even when the day has not changed.
func (o *orderNumbers) next(ctx context.Context, repo repository.OrderRepository, resync bool) (string, time.Time, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.now().UTC()
	day := now.Format("20060102")

	if day != o.day || resync {
		latest, err := repo.LatestOrderNumber(ctx, orderPrefix(day))
		if err != nil {
			return "", now, err
		}

		seq := 0
		if suffix, ok := strings.CutPrefix(latest, orderPrefix(day)); ok {
			seq, _ = strconv.Atoi(suffix)
		}

		if day != o.day {
			o.day = day
			o.count = seq
		} else {
			o.count = max(o.count, seq)
		}
	}
	o.count++

	return fmt.Sprintf("%s%04d", orderPrefix(day), o.count), now, nil
}

// storeOrder numbers and stores order, taking a fresh number whenever the
// one handed out is already stored.
func (s *orderService) storeOrder(ctx context.Context, order *models.Order) error {
	logger := middleware.LoggerFromContext(ctx)

	var err error
	for attempt := range orderNumberAttempts {
		var number string
		number, order.PlacedAt, err = s.numbers.next(ctx, s.repo, attempt > 0)
		if err != nil {
			return fmt.Errorf("failed to reserve order number: %w", err)
		}
		order.OrderNumber = number

		err = s.repo.CreateOrder(ctx, order)
		if !stdErrors.Is(err, repository.ErrDuplicateOrder) {
			return err
		}

		logger.Warn("Order number already taken, resyncing",
			slog.String("orderNumber", number),
			slog.Int("attempt", attempt+1))
	}

	return err
}

func sanitizeAddress(a models.ShippingAddress) models.ShippingAddress {
	a.FullName = utils.SanitizeText(a.FullName)
	a.Address = utils.SanitizeText(a.Address)
	a.City = utils.SanitizeText(a.City)
	a.State = utils.SanitizeText(a.State)

	return a
}

// PlaceOrder checks out the cart and records the order. If the order cannot
// be stored the cart gets its lines back. Publishing and the confirmation
// email are best effort.
func (s *orderService) PlaceOrder(ctx context.Context, cartID uuid.UUID, req *models.CheckoutRequest) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx)

	c, ok := s.store.Get(cartID)
	if !ok {
		return nil, errors.NotFoundError("Cart not found")
	}

	snapshot, err := c.Checkout(s.policy)
	if err != nil {
		if stdErrors.Is(err, cart.ErrEmptyCart) {
			return nil, errors.EmptyCartError("Cannot place an order with an empty cart").WithError(err)
		}
		return nil, errors.InternalError("Failed to check out cart").WithError(err)
	}

	order := &models.Order{
		ID:              uuid.New(),
		CartID:          cartID,
		Status:          models.OrderStatusPending,
		Items:           snapshot.Items,
		Coupon:          snapshot.Coupon,
		Totals:          snapshot.Totals,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: sanitizeAddress(req.ShippingAddress),
	}

	if err := s.storeOrder(ctx, order); err != nil {
		c.Restore(snapshot)
		logger.Error("Failed to store order, cart restored",
			slog.String("cartId", cartID.String()),
			slog.String("error", err.Error()))

		return nil, errors.DatabaseError("Failed to place order").WithError(err)
	}

	metrics.OrderPlaced(string(order.PaymentMethod))
	logger.Info("Order placed",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("total", order.Totals.Total.StringFixed(2)))

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil {
			logger.Warn("Failed to publish order event", slog.String("orderNumber", order.OrderNumber), slog.String("error", err.Error()))
		}
	}

	if s.notifier != nil {
		if err := s.notifier.SendOrderConfirmation(ctx, order); err != nil {
			logger.Warn("Failed to send order confirmation", slog.String("orderNumber", order.OrderNumber), slog.String("error", err.Error()))
		}
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if stdErrors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}
