//go:build unit || e2e

package builder

import (
	"time"

	domreview "salon-storefront/internal/domain/review"
	reqdto "salon-storefront/internal/handler/dto/request"
	"salon-storefront/internal/pkg/ptr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewBuilder struct {
	ID        string
	Name      string
	Rating    int
	Comment   string
	Approved  bool
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:        primitive.NewObjectID().Hex(),
		Name:      "Priya Shah",
		Rating:    5,
		Comment:   "Lovely staff and the facial was wonderful.",
		Approved:  false,
		CreatedAt: time.Date(2024, 4, 20, 16, 45, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() *domreview.Review {
	return &domreview.Review{
		ID:        r.ID,
		Name:      r.Name,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Approved:  r.Approved,
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildRequestDTO() reqdto.ReviewRequest {
	return reqdto.ReviewRequest{
		Name:    r.Name,
		Rating:  ptr.Of(r.Rating),
		Comment: r.Comment,
	}
}
