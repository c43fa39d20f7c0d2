//go:build unit || e2e

package builder

import (
	"time"

	domgallery "salon-storefront/internal/domain/gallery"
	reqdto "salon-storefront/internal/handler/dto/request"
	"salon-storefront/internal/pkg/ptr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GalleryItemBuilder struct {
	ID        string
	Image     string
	Caption   *string
	CreatedAt time.Time
}

func NewGalleryItemBuilder() *GalleryItemBuilder {
	return &GalleryItemBuilder{
		ID:        primitive.NewObjectID().Hex(),
		Image:     SampleImage,
		Caption:   ptr.Of("Evening glam look"),
		CreatedAt: time.Date(2024, 2, 11, 18, 0, 0, 0, time.UTC),
	}
}

func (b *GalleryItemBuilder) With(mutate func(*GalleryItemBuilder)) *GalleryItemBuilder {
	mutate(b)
	return b
}

func (b *GalleryItemBuilder) BuildDomain() *domgallery.Item {
	return &domgallery.Item{
		ID:        b.ID,
		Image:     b.Image,
		Caption:   b.Caption,
		CreatedAt: b.CreatedAt,
	}
}

func (b *GalleryItemBuilder) BuildRequestDTO() reqdto.GalleryItemRequest {
	return reqdto.GalleryItemRequest{
		Image:   b.Image,
		Caption: b.Caption,
	}
}
