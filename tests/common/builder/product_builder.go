//go:build unit || e2e

package builder

import (
	"time"

	domproduct "salon-storefront/internal/domain/product"
	reqdto "salon-storefront/internal/handler/dto/request"
	"salon-storefront/internal/pkg/ptr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SampleImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type ProductBuilder struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	InStock     bool
	Featured    bool
	CreatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          primitive.NewObjectID().Hex(),
		Name:        "Velvet Matte Lipstick",
		Description: "Long-lasting matte finish in rosewood",
		Price:       24.5,
		Category:    domproduct.CategoryMakeup,
		Image:       SampleImage,
		InStock:     true,
		Featured:    false,
		CreatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildDomain() *domproduct.Product {
	return &domproduct.Product{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category,
		Image:       b.Image,
		InStock:     b.InStock,
		Featured:    b.Featured,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ProductBuilder) BuildAttributes() domproduct.Attributes {
	return domproduct.Attributes{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category,
		Image:       b.Image,
		InStock:     ptr.Of(b.InStock),
		Featured:    ptr.Of(b.Featured),
	}
}

// BuildRequestDTO leaves createdAt out so the server stamps it.
func (b *ProductBuilder) BuildRequestDTO() reqdto.ProductRequest {
	return reqdto.ProductRequest{
		Name:        b.Name,
		Description: b.Description,
		Price:       ptr.Of(b.Price),
		Category:    b.Category,
		Image:       b.Image,
		InStock:     ptr.Of(b.InStock),
		Featured:    ptr.Of(b.Featured),
	}
}
