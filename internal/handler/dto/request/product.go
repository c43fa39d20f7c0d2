package request

import (
	"time"

	"salon-storefront/internal/domain/product"
)

// ProductRequest is the body of both create and full replace.
type ProductRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Price       *float64   `json:"price" binding:"required,gte=0"`
	Category    string     `json:"category" binding:"required"`
	Image       string     `json:"image" binding:"required"`
	InStock     *bool      `json:"inStock"`
	Featured    *bool      `json:"featured"`
	CreatedAt   *time.Time `json:"createdAt"`
}

func (r *ProductRequest) ToAttributes() product.Attributes {
	return product.Attributes{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		Image:       r.Image,
		InStock:     r.InStock,
		Featured:    r.Featured,
		CreatedAt:   r.CreatedAt,
	}
}

// ProductListQuery holds the optional filters of GET /products.
type ProductListQuery struct {
	Category *string `form:"category"`
	Featured *bool   `form:"featured"`
}

// CategoryFilter returns nil for a missing or empty ?category=.
func (q *ProductListQuery) CategoryFilter() *string {
	return nonEmpty(q.Category)
}

// An empty query value constrains nothing.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
