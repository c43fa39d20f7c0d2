package product

import (
	"strings"
	"time"

	"salon-storefront/internal/pkg/clock"
	"salon-storefront/internal/pkg/errs"
	"salon-storefront/internal/pkg/patch"
)

var (
	ErrNotFound      = errs.NotFound("product not found")
	ErrEmptyName     = errs.Validation("product name is required")
	ErrNegativePrice = errs.Validation("product price must not be negative")
	ErrEmptyCategory = errs.Validation("product category is required")
	ErrEmptyImage    = errs.Validation("product image is required")
)

// Category is a free-text tag. The storefront uses the values below but
// any string is accepted.
const (
	CategoryMakeup     = "Makeup"
	CategorySkincare   = "Skincare"
	CategoryFragrances = "Fragrances"
	CategoryHaircare   = "Haircare"
	CategoryGiftItems  = "Gift Items"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string // encoded blob, usually a data URI
	InStock     bool
	Featured    bool
	CreatedAt   time.Time
}

// Attributes is the caller-supplied part of a Product. Nil pointers take
// the defaults.
type Attributes struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	InStock     *bool
	Featured    *bool
	CreatedAt   *time.Time
}

// New builds a Product from attrs, applying defaults. It is used for both
// create and full replace, so an omitted CreatedAt becomes now even when
// replacing an existing record.
func New(attrs Attributes, now time.Time) (*Product, error) {
	p := &Product{
		Name:        attrs.Name,
		Description: attrs.Description,
		Price:       attrs.Price,
		Category:    attrs.Category,
		Image:       attrs.Image,
		InStock:     patch.Coalesce(attrs.InStock, true),
		Featured:    patch.Coalesce(attrs.Featured, false),
		CreatedAt:   clock.Normalize(patch.Coalesce(attrs.CreatedAt, now)),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	if p.Image == "" {
		return ErrEmptyImage
	}
	return nil
}
