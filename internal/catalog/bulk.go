package catalog

import (
	"errors"
	"slices"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/shopspring/decimal"
)

var ErrUnknownPriceMode = errors.New("unknown price update mode")

var hundred = decimal.NewFromInt(100)

// bulkApply returns a copy of products with edit applied to every product
// whose id is selected, plus the edited products themselves.
func bulkApply(products []models.Product, ids []string, edit func(p *models.Product)) ([]models.Product, []models.Product) {
	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	all := make([]models.Product, len(products))
	changed := make([]models.Product, 0, len(ids))

	for i, p := range products {
		if _, ok := selected[p.ID]; ok {
			edit(&p)
			changed = append(changed, p)
		}
		all[i] = p
	}

	return all, changed
}

// AdjustPrice applies a percentage or fixed change to price, floored at zero.
func AdjustPrice(price decimal.Decimal, mode models.PriceUpdateMode, value decimal.Decimal) (decimal.Decimal, error) {
	var next decimal.Decimal

	switch mode {
	case models.PriceUpdatePercentage:
		next = price.Mul(decimal.NewFromInt(1).Add(value.Div(hundred)))
	case models.PriceUpdateFixed:
		next = price.Add(value)
	default:
		return price, ErrUnknownPriceMode
	}

	return decimal.Max(next, decimal.Zero), nil
}

// BulkUpdatePrice reprices the selected products. The list price and discount
// follow the new price; a price above the list price drops the list price.
func BulkUpdatePrice(products []models.Product, ids []string, mode models.PriceUpdateMode, value decimal.Decimal, now time.Time) ([]models.Product, []models.Product, error) {
	if mode != models.PriceUpdatePercentage && mode != models.PriceUpdateFixed {
		return nil, nil, ErrUnknownPriceMode
	}

	all, changed := bulkApply(products, ids, func(p *models.Product) {
		p.Price, _ = AdjustPrice(p.Price, mode, value)
		SyncDiscount(p)
		p.UpdatedAt = now
	})

	return all, changed, nil
}

// SyncDiscount recomputes the discount from the list price. A list price
// at or below the price is dropped.
func SyncDiscount(p *models.Product) {
	if p.OriginalPrice == nil {
		return
	}

	if p.Price.GreaterThanOrEqual(*p.OriginalPrice) || p.OriginalPrice.IsZero() {
		p.OriginalPrice = nil
		p.DiscountPercent = 0
		return
	}

	off := p.OriginalPrice.Sub(p.Price).Div(*p.OriginalPrice).Mul(hundred)
	p.DiscountPercent = int(off.Round(0).IntPart())
}

func BulkSetCategory(products []models.Product, ids []string, category string, now time.Time) ([]models.Product, []models.Product) {
	return bulkApply(products, ids, func(p *models.Product) {
		p.Category = category
		p.UpdatedAt = now
	})
}

func BulkSetStatus(products []models.Product, ids []string, status models.ProductStatus, now time.Time) ([]models.Product, []models.Product) {
	return bulkApply(products, ids, func(p *models.Product) {
		p.Status = status
		p.UpdatedAt = now
	})
}

// BulkDelete returns the products that survive and how many were removed.
func BulkDelete(products []models.Product, ids []string) ([]models.Product, int) {
	kept := slices.DeleteFunc(slices.Clone(products), func(p models.Product) bool {
		return slices.Contains(ids, p.ID)
	})

	return kept, len(products) - len(kept)
}

// Archive hides a product from the storefront without deleting it.
func Archive(p models.Product, now time.Time) models.Product {
	p.Status = models.ProductStatusInactive
	p.UpdatedAt = now

	return p
}

func SetStock(p models.Product, stock int, now time.Time) models.Product {
	p.Stock = max(stock, 0)
	p.UpdatedAt = now

	return p
}

// Duplicate copies p under a new id with a "(Copy)" name and "-COPY" sku.
func Duplicate(p models.Product, newID string, now time.Time) models.Product {
	dup := p
	dup.ID = newID
	dup.Name = p.Name + " (Copy)"
	dup.SKU = p.SKU + "-COPY"
	dup.SkinTypes = slices.Clone(p.SkinTypes)
	dup.Ingredients = slices.Clone(p.Ingredients)
	dup.Variants = slices.Clone(p.Variants)
	dup.CreatedAt = now
	dup.UpdatedAt = now

	if p.OriginalPrice != nil {
		orig := *p.OriginalPrice
		dup.OriginalPrice = &orig
	}

	return dup
}

// LowStockLevelOf grades stock against the desired minimum.
func LowStockLevelOf(stock, minStock int) models.LowStockLevel {
	limit := decimal.NewFromInt(int64(minStock))
	current := decimal.NewFromInt(int64(stock))

	switch {
	case stock <= 0:
		return models.LowStockOut
	case current.LessThanOrEqual(limit.Mul(decimal.NewFromFloat(0.3))):
		return models.LowStockCritical
	case current.LessThanOrEqual(limit.Mul(decimal.NewFromFloat(0.6))):
		return models.LowStockLow
	default:
		return models.LowStockNormal
	}
}

// Summarize builds the admin dashboard figures.
func Summarize(products []models.Product, lowStockThreshold, minStock int) models.Dashboard {
	d := models.Dashboard{
		TotalProducts:  len(products),
		InventoryValue: decimal.Zero,
		Alerts:         []models.LowStockAlert{},
	}

	for _, p := range products {
		if p.Status == models.ProductStatusActive {
			d.ActiveProducts++
		}

		switch StockStatusOf(p.Stock, lowStockThreshold) {
		case models.StockStatusLowStock:
			d.LowStockCount++
		case models.StockStatusOutOfStock:
			d.OutOfStock++
		}

		d.InventoryValue = d.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))

		if level := LowStockLevelOf(p.Stock, minStock); level != models.LowStockNormal {
			d.Alerts = append(d.Alerts, models.LowStockAlert{
				ProductID: p.ID,
				Name:      p.Name,
				SKU:       p.SKU,
				Stock:     p.Stock,
				MinStock:  minStock,
				Level:     level,
			})
		}
	}

	slices.SortStableFunc(d.Alerts, func(a, b models.LowStockAlert) int {
		return a.Stock - b.Stock
	})

	return d
}
