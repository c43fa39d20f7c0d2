package gallery

import (
	"time"

	"salon-storefront/internal/pkg/clock"
	"salon-storefront/internal/pkg/errs"
	"salon-storefront/internal/pkg/patch"
)

var (
	ErrNotFound   = errs.NotFound("gallery item not found")
	ErrEmptyImage = errs.Validation("gallery image is required")
)

type Item struct {
	ID        string
	Image     string
	Caption   *string
	CreatedAt time.Time
}

type Attributes struct {
	Image     string
	Caption   *string
	CreatedAt *time.Time
}

func New(attrs Attributes, now time.Time) (*Item, error) {
	if attrs.Image == "" {
		return nil, ErrEmptyImage
	}
	return &Item{
		Image:     attrs.Image,
		Caption:   attrs.Caption,
		CreatedAt: clock.Normalize(patch.Coalesce(attrs.CreatedAt, now)),
	}, nil
}
