package request

import "salon-storefront/internal/domain/service"

type ServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Image       string   `json:"image" binding:"required"`
	Popular     *bool    `json:"popular"`
}

func (r *ServiceRequest) ToAttributes() service.Attributes {
	return service.Attributes{
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       *r.Price,
		Image:       r.Image,
		Popular:     r.Popular,
	}
}
