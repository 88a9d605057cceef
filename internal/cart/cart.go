// Package cart is the per-session shopping cart state container. Every
// mutation runs under the cart's lock, so concurrent requests for one
// session are applied one at a time.
package cart

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	ErrItemNotFound      = errors.New("item not in cart")
	ErrSavedNotFound     = errors.New("item not in saved list")
	ErrNotInStock        = errors.New("saved item is out of stock")
	ErrEmptyCart         = errors.New("cart is empty")
)

type Cart struct {
	mu           sync.RWMutex
	id           uuid.UUID
	items        []models.CartItem
	saved        []models.SavedItem
	coupon       *models.AppliedCoupon
	enforceStock bool
	updatedAt    time.Time
	now          func() time.Time
}

type Option func(*Cart)

// WithStockLimit rejects quantities above the stock captured when the
// product was added.
func WithStockLimit(enabled bool) Option {
	return func(c *Cart) {
		c.enforceStock = enabled
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Cart) {
		c.now = now
	}
}

func New(id uuid.UUID, opts ...Option) *Cart {
	c := &Cart{id: id, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.updatedAt = c.now()

	return c
}

func (c *Cart) ID() uuid.UUID {
	return c.id
}

func (c *Cart) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.updatedAt
}

func (c *Cart) touch() {
	c.updatedAt = c.now()
}

// Lines are keyed by product and variant; variant labels match without case.
func sameLine(productID, variant, otherID, otherVariant string) bool {
	return productID == otherID && strings.EqualFold(variant, otherVariant)
}

func (c *Cart) indexOf(productID, variant string) int {
	return slices.IndexFunc(c.items, func(i models.CartItem) bool {
		return sameLine(productID, variant, i.ProductID, i.Variant)
	})
}

func (c *Cart) savedIndexOf(productID, variant string) int {
	return slices.IndexFunc(c.saved, func(i models.SavedItem) bool {
		return sameLine(productID, variant, i.ProductID, i.Variant)
	})
}

// checkStock validates quantity for item's line against the product's stock,
// counting the product's other variant lines too.
func (c *Cart) checkStock(item models.CartItem, quantity int) error {
	if !c.enforceStock {
		return nil
	}

	total := quantity
	for _, line := range c.items {
		if line.ProductID == item.ProductID && !strings.EqualFold(line.Variant, item.Variant) {
			total += line.Quantity
		}
	}

	if total > item.Stock {
		return ErrInsufficientStock
	}

	return nil
}

// Add puts item in the cart. A zero quantity means one; adding a product
// variant that is already present increases its quantity instead.
func (c *Cart) Add(item models.CartItem) error {
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	if item.Quantity < 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(item.ProductID, item.Variant); i >= 0 {
		next := c.items[i].Quantity + item.Quantity
		if err := c.checkStock(c.items[i], next); err != nil {
			return err
		}
		c.items[i].Quantity = next
		c.touch()
		return nil
	}

	if err := c.checkStock(item, item.Quantity); err != nil {
		return err
	}

	c.items = append(c.items, item)
	c.touch()

	return nil
}

// SetQuantity replaces a line's quantity. Quantities below one leave the
// cart unchanged and report ErrInvalidQuantity.
func (c *Cart) SetQuantity(productID, variant string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID, variant)
	if i < 0 {
		return ErrItemNotFound
	}

	if err := c.checkStock(c.items[i], quantity); err != nil {
		return err
	}

	c.items[i].Quantity = quantity
	c.touch()

	return nil
}

func (c *Cart) Remove(productID, variant string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID, variant)
	if i < 0 {
		return ErrItemNotFound
	}

	c.items = slices.Delete(c.items, i, i+1)
	c.touch()

	return nil
}

// SaveForLater moves a line out of the cart into the saved list.
func (c *Cart) SaveForLater(productID, variant string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID, variant)
	if i < 0 {
		return ErrItemNotFound
	}

	item := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)

	if j := c.savedIndexOf(item.ProductID, item.Variant); j >= 0 {
		c.saved = slices.Delete(c.saved, j, j+1)
	}

	c.saved = append(c.saved, models.SavedItem{
		ProductID: item.ProductID,
		Name:      item.Name,
		Brand:     item.Brand,
		Image:     item.Image,
		Variant:   item.Variant,
		UnitPrice: item.UnitPrice,
		Stock:     item.Stock,
		InStock:   true,
	})
	c.touch()

	return nil
}

// MoveToCart returns a saved item to the cart with quantity one, or bumps the
// quantity if the same variant is already in the cart.
func (c *Cart) MoveToCart(productID, variant string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	j := c.savedIndexOf(productID, variant)
	if j < 0 {
		return ErrSavedNotFound
	}

	saved := c.saved[j]
	if !saved.InStock {
		return ErrNotInStock
	}

	if i := c.indexOf(saved.ProductID, saved.Variant); i >= 0 {
		next := c.items[i].Quantity + 1
		if err := c.checkStock(c.items[i], next); err != nil {
			return err
		}
		c.items[i].Quantity = next
	} else {
		item := models.CartItem{
			ProductID: saved.ProductID,
			Name:      saved.Name,
			Brand:     saved.Brand,
			Image:     saved.Image,
			Variant:   saved.Variant,
			UnitPrice: saved.UnitPrice,
			Stock:     saved.Stock,
			Quantity:  1,
		}
		if err := c.checkStock(item, 1); err != nil {
			return err
		}
		c.items = append(c.items, item)
	}

	c.saved = slices.Delete(c.saved, j, j+1)
	c.touch()

	return nil
}

func (c *Cart) RemoveSaved(productID, variant string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	j := c.savedIndexOf(productID, variant)
	if j < 0 {
		return ErrSavedNotFound
	}

	c.saved = slices.Delete(c.saved, j, j+1)
	c.touch()

	return nil
}

// MarkAvailability updates the in-stock flag of saved items from a fresh
// stock lookup. Products missing from stock are left alone.
func (c *Cart) MarkAvailability(stock map[string]int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.saved {
		if n, ok := stock[c.saved[i].ProductID]; ok {
			c.saved[i].Stock = n
			c.saved[i].InStock = n > 0
		}
	}
}

// ApplyCoupon resolves code and stores it, replacing any earlier coupon.
// A failed lookup leaves the current coupon in place.
func (c *Cart) ApplyCoupon(table pricing.CouponTable, code string) (pricing.CouponResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, err := pricing.ApplyCoupon(table, code, pricing.Subtotal(c.lineItems()))
	if err != nil {
		return result, err
	}

	c.coupon = &models.AppliedCoupon{Code: result.Coupon.Code, Percent: result.Coupon.Percent}
	c.touch()

	return result, nil
}

func (c *Cart) ClearCoupon() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.coupon = nil
	c.touch()
}

// Clear empties the cart after checkout. Saved items are kept.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.coupon = nil
	c.touch()
}

func (c *Cart) lineItems() []pricing.LineItem {
	items := make([]pricing.LineItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, pricing.LineItem{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}

	return items
}

func (c *Cart) totals(policy pricing.Policy) pricing.Totals {
	items := c.lineItems()

	discount := decimal.Zero
	if c.coupon != nil {
		discount = pricing.DiscountFor(pricing.Subtotal(items), c.coupon.Percent)
	}

	return pricing.ComputeTotals(items, policy.WithDiscount(discount))
}

// Totals recomputes the order totals from the current lines and coupon.
// Any DiscountAmount already on policy is replaced.
func (c *Cart) Totals(policy pricing.Policy) pricing.Totals {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.totals(policy)
}

func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}

	return count
}

// View copies the cart state for rendering.
func (c *Cart) View(policy pricing.Policy) models.CartView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.viewLocked(policy)
}

func (c *Cart) viewLocked(policy pricing.Policy) models.CartView {
	totals := c.totals(policy)

	view := models.CartView{
		ID:        c.id,
		Items:     slices.Clone(c.items),
		Saved:     slices.Clone(c.saved),
		Totals:    totals.Model(),
		Display:   totals.Formatted(),
		UpdatedAt: c.updatedAt,
	}

	if view.Items == nil {
		view.Items = []models.CartItem{}
	}

	if view.Saved == nil {
		view.Saved = []models.SavedItem{}
	}

	if c.coupon != nil {
		coupon := *c.coupon
		view.Coupon = &coupon
	}

	for _, item := range c.items {
		view.ItemCount += item.Quantity
	}

	return view
}

// Checkout snapshots the cart and empties it under a single lock.
func (c *Cart) Checkout(policy pricing.Policy) (models.CartView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return models.CartView{}, ErrEmptyCart
	}

	snapshot := c.viewLocked(policy)
	c.items = nil
	c.coupon = nil
	c.touch()

	return snapshot, nil
}

// Restore puts checked-out lines back after the order could not be recorded.
// Lines added since the checkout are merged by product and variant.
func (c *Cart) Restore(snapshot models.CartView) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range snapshot.Items {
		if i := c.indexOf(item.ProductID, item.Variant); i >= 0 {
			c.items[i].Quantity += item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}

	if c.coupon == nil && snapshot.Coupon != nil {
		coupon := *snapshot.Coupon
		c.coupon = &coupon
	}

	c.touch()
}
