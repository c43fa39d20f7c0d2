package response

import (
	"time"

	"salon-storefront/internal/domain/gallery"

	"github.com/jinzhu/copier"
)

type GalleryItemResponse struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	Caption   *string   `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromGalleryItem(i *gallery.Item) (*GalleryItemResponse, error) {
	var res GalleryItemResponse
	if err := copier.Copy(&res, i); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromGalleryItems(items []*gallery.Item) ([]*GalleryItemResponse, error) {
	return mapAll(items, FromGalleryItem)
}
