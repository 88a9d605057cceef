package catalog

import (
	"errors"
	"fmt"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrOriginalBelowPrice = errors.New("original price must not be below price")
)

// Validate checks a product at the source boundary. Struct tags cover the
// scalar fields; decimals are checked here.
func Validate(validate *validator.Validate, p *models.Product) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("product %q: %w", p.ID, err)
	}

	if p.Price.IsNegative() {
		return fmt.Errorf("product %q: %w", p.ID, ErrNegativePrice)
	}

	if p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price) {
		return fmt.Errorf("product %q: %w", p.ID, ErrOriginalBelowPrice)
	}

	for _, v := range p.Variants {
		if v.Price.IsNegative() {
			return fmt.Errorf("product %q variant %q: %w", p.ID, v.Label, ErrNegativePrice)
		}
	}

	return nil
}

// ValidateAll keeps the products that pass Validate and returns the rest as errors.
func ValidateAll(validate *validator.Validate, products []models.Product) ([]models.Product, []error) {
	valid := make([]models.Product, 0, len(products))
	var errs []error

	for i := range products {
		if err := Validate(validate, &products[i]); err != nil {
			errs = append(errs, err)
			continue
		}
		valid = append(valid, products[i])
	}

	return valid, errs
}
