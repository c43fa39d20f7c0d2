package response

import (
	"time"

	"salon-storefront/internal/domain/product"

	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	InStock     bool      `json:"inStock"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromProduct(p *product.Product) (*ProductResponse, error) {
	var res ProductResponse
	if err := copier.Copy(&res, p); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromProducts(ps []*product.Product) ([]*ProductResponse, error) {
	return mapAll(ps, FromProduct)
}
