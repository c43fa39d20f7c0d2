package request

import (
	"time"

	"salon-storefront/internal/domain/review"
)

type ReviewRequest struct {
	Name      string     `json:"name" binding:"required"`
	Rating    *int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string     `json:"comment" binding:"required"`
	Approved  *bool      `json:"approved"`
	CreatedAt *time.Time `json:"createdAt"`
}

func (r *ReviewRequest) ToAttributes() review.Attributes {
	return review.Attributes{
		Name:      r.Name,
		Rating:    *r.Rating,
		Comment:   r.Comment,
		Approved:  r.Approved,
		CreatedAt: r.CreatedAt,
	}
}

// ReviewApprovalRequest needs a pointer so that an explicit false is told
// apart from a missing field.
type ReviewApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type ReviewListQuery struct {
	Approved *bool `form:"approved"`
}
