package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/catalog"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	restPageLimit = 100
	// a product created within this window is flagged as new
	newArrivalWindow = 30 * 24 * time.Hour
)

// RESTClient reads the catalog from the storefront backend API.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	now        func() time.Time
}

func NewRESTClient(cfg *config.Source, validate *validator.Validate) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		validate: validate,
		now:      time.Now,
	}
}

type restImage struct {
	ImageURL string `json:"image_url"`
}

type restVariant struct {
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

type restProduct struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	SKU               *string          `json:"sku"`
	Slug              string           `json:"slug"`
	ShortDescription  *string          `json:"short_description"`
	CategoryID        *string          `json:"category_id"`
	Brand             *string          `json:"brand"`
	BasePrice         decimal.Decimal  `json:"base_price"`
	ComparePrice      *decimal.Decimal `json:"compare_price"`
	Ingredients       *string          `json:"ingredients"`
	SkinType          []string         `json:"skin_type"`
	InventoryQuantity int              `json:"inventory_quantity"`
	IsFeatured        bool             `json:"is_featured"`
	AverageRating     *float64         `json:"average_rating"`
	TotalReviews      int              `json:"total_reviews"`
	Images            []restImage      `json:"images"`
	Variants          []restVariant    `json:"variants"`
	CreatedAt         *time.Time       `json:"created_at"`
}

type restProductList struct {
	Items []restProduct `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type restCategory struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Slug     string         `json:"slug"`
	ParentID *string        `json:"parent_id"`
	Children []restCategory `json:"children"`
}

type restCategoryTree struct {
	Items []restCategory `json:"items"`
}

func (c *RESTClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// decodeProductPage accepts the paginated envelope or a bare array.
func decodeProductPage(body []byte) (restProductList, error) {
	var page restProductList

	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(body, &page.Items); err != nil {
			return page, fmt.Errorf("failed to unmarshal products: %w", err)
		}
		page.Total = len(page.Items)
		return page, nil
	}

	if err := json.Unmarshal(body, &page); err != nil {
		return page, fmt.Errorf("failed to unmarshal products: %w", err)
	}

	return page, nil
}

func (c *RESTClient) Categories(ctx context.Context) ([]models.Category, error) {
	body, err := c.get(ctx, "/categories/tree", nil)
	if err != nil {
		return nil, err
	}

	var tree restCategoryTree
	if strings.HasPrefix(strings.TrimSpace(string(body)), "[") {
		err = json.Unmarshal(body, &tree.Items)
	} else {
		err = json.Unmarshal(body, &tree)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}

	categories := []models.Category{}
	flattenCategories(tree.Items, "", &categories)

	return categories, nil
}

func flattenCategories(nodes []restCategory, parentID string, out *[]models.Category) {
	for _, n := range nodes {
		parent := parentID
		if n.ParentID != nil {
			parent = *n.ParentID
		}

		*out = append(*out, models.Category{ID: n.ID, Name: n.Name, Slug: n.Slug, ParentID: parent})
		flattenCategories(n.Children, n.ID, out)
	}
}

func (c *RESTClient) Products(ctx context.Context) ([]models.Product, error) {
	categories, err := c.Categories(ctx)
	if err != nil {
		// products still list without category slugs
		slog.WarnContext(ctx, "Failed to load categories from catalog API", slog.String("error", err.Error()))
	}

	slugs := make(map[string]string, len(categories))
	for _, cat := range categories {
		slugs[cat.ID] = cat.Slug
	}

	var raw []restProduct

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(restPageLimit))

		body, err := c.get(ctx, "/products", query)
		if err != nil {
			return nil, err
		}

		list, err := decodeProductPage(body)
		if err != nil {
			return nil, err
		}

		raw = append(raw, list.Items...)

		if len(list.Items) == 0 || len(raw) >= list.Total {
			break
		}
	}

	products := make([]models.Product, 0, len(raw))
	for _, p := range raw {
		products = append(products, c.normalize(p, slugs))
	}

	valid, errs := catalog.ValidateAll(c.validate, products)
	for _, err := range errs {
		slog.WarnContext(ctx, "Dropping invalid product from catalog API", slog.String("error", err.Error()))
	}

	return valid, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// tag turns a display value such as "Aloe Vera" into the filter key "aloe-vera".
func tag(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

func tags(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := tag(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (c *RESTClient) normalize(p restProduct, slugs map[string]string) models.Product {
	product := models.Product{
		ID:          p.ID,
		Name:        strings.TrimSpace(p.Name),
		SKU:         deref(p.SKU),
		Brand:       tag(deref(p.Brand)),
		Description: deref(p.ShortDescription),
		Price:       p.BasePrice,
		Stock:       p.InventoryQuantity,
		ReviewCount: p.TotalReviews,
		Featured:    p.IsFeatured,
		Status:      models.ProductStatusActive,
		SkinTypes:   tags(p.SkinType),
		Ingredients: tags(strings.Split(deref(p.Ingredients), ",")),
	}

	if id := deref(p.CategoryID); id != "" {
		product.Category = id
		if slug, ok := slugs[id]; ok {
			product.Category = slug
		}
	}

	if p.AverageRating != nil {
		product.Rating = *p.AverageRating
	}

	if p.ComparePrice != nil && p.ComparePrice.GreaterThan(p.BasePrice) {
		original := *p.ComparePrice
		product.OriginalPrice = &original
		product.DiscountPercent = int(original.Sub(p.BasePrice).Div(original).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}

	if len(p.Images) > 0 {
		product.Image = p.Images[0].ImageURL
	}

	for _, v := range p.Variants {
		product.Variants = append(product.Variants, models.Variant{Label: v.Title, Price: v.Price})
	}

	if p.CreatedAt != nil {
		product.CreatedAt = *p.CreatedAt
		product.UpdatedAt = *p.CreatedAt
		product.IsNew = c.now().Sub(*p.CreatedAt) <= newArrivalWindow
	}

	return product
}
