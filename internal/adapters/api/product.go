package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mallcloud/mallctl/internal/domain"
	"github.com/shopspring/decimal"
)

// Catalog sort orders.
const (
	SortSales     = "sales"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

// ProductQuery filters and pages the catalog listing. Zero values are
// omitted from the request.
type ProductQuery struct {
	Page       int
	PageSize   int
	Keyword    string
	CategoryID int64
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Sort       string
	IsFeatured *bool
	IsNew      *bool
}

func (q ProductQuery) values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Keyword != "" {
		values.Set("keyword", q.Keyword)
	}
	if q.CategoryID > 0 {
		values.Set("category_id", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.PriceMin != nil {
		values.Set("price_min", q.PriceMin.String())
	}
	if q.PriceMax != nil {
		values.Set("price_max", q.PriceMax.String())
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.IsFeatured != nil {
		values.Set("is_featured", strconv.FormatBool(*q.IsFeatured))
	}
	if q.IsNew != nil {
		values.Set("is_new", strconv.FormatBool(*q.IsNew))
	}

	return values
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []domain.Product `json:"items"`
}

// Products lists the catalog with optional filters and paging.
func (c *Client) Products(ctx context.Context, query ProductQuery) (ProductPage, error) {
	var page ProductPage
	if err := c.get(ctx, "/products", query.values(), &page); err != nil {
		return ProductPage{}, err
	}

	return page, nil
}

// Product fetches one catalog entry by id.
func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

// SearchProducts searches the catalog by keyword.
func (c *Client) SearchProducts(ctx context.Context, keyword string, query ProductQuery) (ProductPage, error) {
	values := query.values()
	values.Set("keyword", keyword)

	var page ProductPage
	if err := c.get(ctx, "/products/search", values, &page); err != nil {
		return ProductPage{}, err
	}

	return page, nil
}

// RecommendProducts fetches the storefront's recommended products.
func (c *Client) RecommendProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/products/recommend", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// Categories lists the flat category list.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// CategoryTree fetches categories nested by parent.
func (c *Client) CategoryTree(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/categories/tree", nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// HotKeywords fetches the currently trending search keywords.
func (c *Client) HotKeywords(ctx context.Context) ([]string, error) {
	var keywords []string
	if err := c.get(ctx, "/search/hot", nil, &keywords); err != nil {
		return nil, err
	}

	return keywords, nil
}

// SearchSuggestions fetches completions for a partial keyword.
func (c *Client) SearchSuggestions(ctx context.Context, keyword string) ([]string, error) {
	values := url.Values{}
	values.Set("keyword", keyword)

	var suggestions []string
	if err := c.get(ctx, "/search/suggest", values, &suggestions); err != nil {
		return nil, err
	}

	return suggestions, nil
}

// Banners fetches the storefront carousel entries.
func (c *Client) Banners(ctx context.Context) ([]domain.Banner, error) {
	var banners []domain.Banner
	if err := c.get(ctx, "/banners", nil, &banners); err != nil {
		return nil, err
	}

	return banners, nil
}
