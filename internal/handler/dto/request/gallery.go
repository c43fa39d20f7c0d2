package request

import (
	"time"

	"salon-storefront/internal/domain/gallery"
)

type GalleryItemRequest struct {
	Image     string     `json:"image" binding:"required"`
	Caption   *string    `json:"caption"`
	CreatedAt *time.Time `json:"createdAt"`
}

func (r *GalleryItemRequest) ToAttributes() gallery.Attributes {
	return gallery.Attributes{
		Image:     r.Image,
		Caption:   r.Caption,
		CreatedAt: r.CreatedAt,
	}
}
