package response

import (
	"time"

	"salon-storefront/internal/domain/review"

	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromReview(r *review.Review) (*ReviewResponse, error) {
	var res ReviewResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromReviews(rs []*review.Review) ([]*ReviewResponse, error) {
	return mapAll(rs, FromReview)
}
