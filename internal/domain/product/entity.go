// internal/domain/product/entity.go
package product

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is an ordered list of strings stored as a JSON column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// StringMap is a string-to-string mapping stored as a JSON column
type StringMap map[string]string

// Value implements driver.Valuer
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = StringMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type for StringMap: %T", value)
	}
}

// Product represents the product entity shared by the API client and the
// reference backend
type Product struct {
	ID                 string         `gorm:"primaryKey;size:36" json:"id"`
	Name               string         `gorm:"not null;size:255" json:"name"`
	Description        string         `gorm:"type:text" json:"description"`
	Price              float64        `gorm:"not null" json:"price"`
	Category           string         `gorm:"not null;size:100;index" json:"category"`
	Images             StringList     `gorm:"type:jsonb" json:"images"`
	Specifications     StringMap      `gorm:"type:jsonb" json:"specifications"`
	Stock              int            `gorm:"default:0" json:"stock"`
	SKU                string         `gorm:"size:100;index" json:"sku,omitempty"`
	Brand              string         `gorm:"size:100" json:"brand,omitempty"`
	IsActive           bool           `gorm:"default:true" json:"isActive"`
	Featured           bool           `gorm:"default:false" json:"featured"`
	DiscountPercentage float64        `gorm:"default:0" json:"discountPercentage"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns a UUID when the backend creates a product without one
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsInStock reports whether the product has stock available
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// DiscountedPrice returns the effective price after any discount
func (p *Product) DiscountedPrice() float64 {
	if p.DiscountPercentage <= 0 {
		return p.Price
	}
	return p.Price * (100 - p.DiscountPercentage) / 100
}

// Filter represents product list query parameters. The same struct binds gin
// query parameters on the backend and drives query building in the API client.
type Filter struct {
	Category    string   `form:"category"`
	MinPrice    *float64 `form:"minPrice"`
	MaxPrice    *float64 `form:"maxPrice"`
	Search      string   `form:"search"`
	SearchQuery string   `form:"searchQuery"` // Legacy alias for Search
	InStock     *bool    `form:"inStock"`
	SortBy      string   `form:"sortBy,default=name"`
	SortOrder   string   `form:"sortOrder,default=asc"`
	Page        int      `form:"page,default=1"`
	Limit       int      `form:"limit,default=12"`
}

// SearchTerm resolves the search field, preferring Search over the legacy
// SearchQuery alias
func (f *Filter) SearchTerm() string {
	if f.Search != "" {
		return f.Search
	}
	return f.SearchQuery
}

// Normalize applies defaults for unset pagination fields
func (f *Filter) Normalize(defaultLimit int) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
}

// Page represents one page of a product listing as returned by the backend
type Page struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// HasMore reports whether pages beyond the given one remain
func (p *Page) HasMore(page, limit int) bool {
	return page*limit < p.Total
}
