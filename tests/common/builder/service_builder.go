//go:build unit || e2e

package builder

import (
	domservice "salon-storefront/internal/domain/service"
	reqdto "salon-storefront/internal/handler/dto/request"
	"salon-storefront/internal/pkg/ptr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceBuilder struct {
	ID          string
	Name        string
	Description string
	Duration    string
	Price       float64
	Image       string
	Popular     bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:          primitive.NewObjectID().Hex(),
		Name:        "Hydrating Facial",
		Description: "Deep cleanse with a hyaluronic mask",
		Duration:    "60 mins",
		Price:       55,
		Image:       SampleImage,
		Popular:     true,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildDomain() *domservice.Service {
	return &domservice.Service{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Duration:    b.Duration,
		Price:       b.Price,
		Image:       b.Image,
		Popular:     b.Popular,
	}
}

func (b *ServiceBuilder) BuildRequestDTO() reqdto.ServiceRequest {
	return reqdto.ServiceRequest{
		Name:        b.Name,
		Description: b.Description,
		Duration:    b.Duration,
		Price:       ptr.Of(b.Price),
		Image:       b.Image,
		Popular:     ptr.Of(b.Popular),
	}
}
