// internal/api/products.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/your-org/storefront/internal/domain/product"
)

// GetProducts fetches one page of products matching the filter. Sorting and
// tie-breaking are delegated entirely to the backend; the client never
// re-sorts. The result satisfies catalog.Fetcher.
func (c *Client) GetProducts(ctx context.Context, filter product.Filter) (*product.Page, error) {
	filter.Normalize(0)

	params := url.Values{}
	params.Set("search", filter.SearchTerm())
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}
	if filter.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}
	if filter.InStock != nil {
		params.Set("inStock", strconv.FormatBool(*filter.InStock))
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	sortOrder := filter.SortOrder
	if sortOrder == "" {
		sortOrder = "asc"
	}
	params.Set("sortBy", sortBy)
	params.Set("sortOrder", sortOrder)
	params.Set("page", strconv.Itoa(filter.Page))
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}

	var page product.Page
	if err := c.do(ctx, http.MethodGet, "/products?"+params.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct fetches a single product by id
func (c *Client) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct creates a product. Image URLs must already be uploaded.
func (c *Client) CreateProduct(ctx context.Context, req *product.CreateRequest) (*product.Product, error) {
	var p product.Product
	if err := c.do(ctx, http.MethodPost, "/products", req, &p); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &p, nil
}

// UpdateProduct applies a partial update to a product
func (c *Client) UpdateProduct(ctx context.Context, id string, req *product.UpdateRequest) (*product.Product, error) {
	var p product.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct deletes a product by id
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}
