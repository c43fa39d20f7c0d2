package response

import (
	"salon-storefront/internal/domain/service"

	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Popular     bool    `json:"popular"`
}

func FromService(s *service.Service) (*ServiceResponse, error) {
	var res ServiceResponse
	if err := copier.Copy(&res, s); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromServices(ss []*service.Service) ([]*ServiceResponse, error) {
	return mapAll(ss, FromService)
}
