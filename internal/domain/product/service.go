// internal/domain/product/service.go
package product

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/storefront/internal/config"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a product does not exist
var ErrNotFound = errors.New("product not found")

// Service handles product business logic for the reference backend
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateRequest represents product creation data
type CreateRequest struct {
	Name               string            `json:"name" binding:"required"`
	Description        string            `json:"description"`
	Price              float64           `json:"price" binding:"required,gte=0"`
	Category           string            `json:"category" binding:"required"`
	Images             []string          `json:"images" binding:"required,min=1"`
	Specifications     map[string]string `json:"specifications"`
	Stock              int               `json:"stock" binding:"gte=0"`
	SKU                string            `json:"sku"`
	Brand              string            `json:"brand"`
	IsActive           *bool             `json:"isActive"`
	Featured           bool              `json:"featured"`
	DiscountPercentage float64           `json:"discountPercentage" binding:"gte=0,lte=100"`
}

// UpdateRequest represents partial product update data
type UpdateRequest struct {
	Name               *string            `json:"name"`
	Description        *string            `json:"description"`
	Price              *float64           `json:"price"`
	Category           *string            `json:"category"`
	Images             *[]string          `json:"images"`
	Specifications     *map[string]string `json:"specifications"`
	Stock              *int               `json:"stock"`
	SKU                *string            `json:"sku"`
	Brand              *string            `json:"brand"`
	IsActive           *bool              `json:"isActive"`
	Featured           *bool              `json:"featured"`
	DiscountPercentage *float64           `json:"discountPercentage"`
}

// GetProducts retrieves products with filtering, sorting and pagination
func (s *Service) GetProducts(req *Filter) (*Page, error) {
	var products []Product
	var total int64

	req.Normalize(s.config.Client.DefaultPageSize)

	query := s.db.Model(&Product{})

	// Apply filters
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}

	if term := req.SearchTerm(); term != "" {
		search := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?", search, search, search)
	}

	if req.MinPrice != nil {
		query = query.Where("price >= ?", *req.MinPrice)
	}

	if req.MaxPrice != nil {
		query = query.Where("price <= ?", *req.MaxPrice)
	}

	if req.InStock != nil {
		if *req.InStock {
			query = query.Where("stock > 0")
		} else {
			query = query.Where("stock = 0")
		}
	}

	// Count total records before pagination
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	// Sorting is entirely server-side; clients never re-sort
	orderClause := s.buildOrderClause(req.SortBy, req.SortOrder)
	query = query.Order(orderClause)

	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	if products == nil {
		products = []Product{}
	}

	return &Page{
		Products: products,
		Total:    int(total),
	}, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id string) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *CreateRequest) (*Product, error) {
	if req.SKU != "" {
		var existing Product
		if result := s.db.Where("sku = ?", req.SKU).First(&existing); result.Error == nil {
			return nil, fmt.Errorf("product with SKU %s already exists", req.SKU)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := Product{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		Category:           req.Category,
		Images:             StringList(req.Images),
		Specifications:     StringMap(req.Specifications),
		Stock:              req.Stock,
		SKU:                req.SKU,
		Brand:              req.Brand,
		IsActive:           isActive,
		Featured:           req.Featured,
		DiscountPercentage: req.DiscountPercentage,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// UpdateProduct updates an existing product from partial fields
func (s *Service) UpdateProduct(id string, req *UpdateRequest) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", result.Error)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Images != nil {
		updates["images"] = StringList(*req.Images)
	}
	if req.Specifications != nil {
		updates["specifications"] = StringMap(*req.Specifications)
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.DiscountPercentage != nil {
		updates["discount_percentage"] = *req.DiscountPercentage
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &product, nil
}

// DeleteProduct soft deletes a product
func (s *Service) DeleteProduct(id string) error {
	result := s.db.Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// buildOrderClause builds ORDER BY clause for sorting
func (s *Service) buildOrderClause(sortBy, sortOrder string) string {
	validSortFields := map[string]string{
		"name":               "name",
		"price":              "price",
		"stock":              "stock",
		"category":           "category",
		"createdAt":          "created_at",
		"updatedAt":          "updated_at",
		"discountPercentage": "discount_percentage",
	}

	column, ok := validSortFields[sortBy]
	if !ok {
		column = "name"
	}

	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "asc"
	}

	return fmt.Sprintf("%s %s", column, sortOrder)
}
