// internal/domain/admin/service.go
package admin

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/api"
	"github.com/your-org/storefront/internal/domain/product"
)

// statsPageSize is the page size used when walking the catalog for
// dashboard stats.
const statsPageSize = 100

// Backend is the slice of the API client the back-office needs.
type Backend interface {
	GetProducts(ctx context.Context, filter product.Filter) (*product.Page, error)
	CreateProduct(ctx context.Context, req *product.CreateRequest) (*product.Product, error)
	UpdateProduct(ctx context.Context, id string, req *product.UpdateRequest) (*product.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	UploadFiles(ctx context.Context, files []api.File) ([]string, error)
}

// Service handles back-office product management business logic
type Service struct {
	backend Backend
	logger  *logrus.Logger
}

// NewService creates a new admin service
func NewService(backend Backend, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{backend: backend, logger: logger}
}

// CreateInput carries the product fields plus image files still to be
// uploaded. Uploaded URLs are appended after any URLs already present in
// Request.Images.
type CreateInput struct {
	Request product.CreateRequest
	Files   []api.File
}

// UpdateInput mirrors CreateInput for partial updates. When Files is
// non-empty the uploaded URLs replace or extend Request.Images depending on
// whether Images was set.
type UpdateInput struct {
	Request product.UpdateRequest
	Files   []api.File
}

// DashboardStats summarizes the catalog for the admin dashboard.
type DashboardStats struct {
	TotalProducts int               `json:"totalProducts"`
	TotalStock    int               `json:"totalStock"`
	OutOfStock    int               `json:"outOfStock"`
	Featured      int               `json:"featured"`
	Recent        []product.Product `json:"recent"`
	TopDiscounts  []product.Product `json:"topDiscounts"`
}

// CreateProduct uploads any staged image files, then creates the product
// with the merged image list.
func (s *Service) CreateProduct(ctx context.Context, input CreateInput) (*product.Product, error) {
	req := input.Request
	if len(input.Files) > 0 {
		urls, err := s.backend.UploadFiles(ctx, input.Files)
		if err != nil {
			return nil, fmt.Errorf("failed to upload product images: %w", err)
		}
		req.Images = append(req.Images, urls...)
	}

	created, err := s.backend.CreateProduct(ctx, &req)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"product_id": created.ID,
		"name":       created.Name,
	}).Info("Product created")
	return created, nil
}

// UpdateProduct uploads any staged image files before applying the update.
// Uploaded URLs extend Request.Images when it was set, and otherwise become
// the full image list.
func (s *Service) UpdateProduct(ctx context.Context, id string, input UpdateInput) (*product.Product, error) {
	req := input.Request
	if len(input.Files) > 0 {
		urls, err := s.backend.UploadFiles(ctx, input.Files)
		if err != nil {
			return nil, fmt.Errorf("failed to upload product images: %w", err)
		}
		if req.Images != nil {
			merged := append(append([]string{}, *req.Images...), urls...)
			req.Images = &merged
		} else {
			req.Images = &urls
		}
	}

	updated, err := s.backend.UpdateProduct(ctx, id, &req)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("product_id", id).Info("Product updated")
	return updated, nil
}

// DeleteProduct removes a product
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("product_id", id).Info("Product deleted")
	return nil
}

// DashboardStats walks all products and aggregates the dashboard counters,
// the five most recently created products and the five steepest discounts.
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	all, err := s.allProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	stats := &DashboardStats{TotalProducts: len(all)}
	for _, p := range all {
		stats.TotalStock += p.Stock
		if p.Stock == 0 {
			stats.OutOfStock++
		}
		if p.Featured {
			stats.Featured++
		}
	}

	recent := append([]product.Product{}, all...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	stats.Recent = topN(recent, 5)

	discounted := make([]product.Product, 0, len(all))
	for _, p := range all {
		if p.DiscountPercentage > 0 {
			discounted = append(discounted, p)
		}
	}
	sort.SliceStable(discounted, func(i, j int) bool {
		return discounted[i].DiscountPercentage > discounted[j].DiscountPercentage
	})
	stats.TopDiscounts = topN(discounted, 5)

	return stats, nil
}

func (s *Service) allProducts(ctx context.Context) ([]product.Product, error) {
	var all []product.Product
	for page := 1; ; page++ {
		result, err := s.backend.GetProducts(ctx, product.Filter{
			Page:  page,
			Limit: statsPageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, result.Products...)
		if !result.HasMore(page, statsPageSize) {
			return all, nil
		}
	}
}

func topN(products []product.Product, n int) []product.Product {
	if len(products) > n {
		products = products[:n]
	}
	return products
}
