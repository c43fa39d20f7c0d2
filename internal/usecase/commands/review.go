package commands

import (
	"context"

	"salon-storefront/internal/domain/review"
	"salon-storefront/internal/metrics"
	"salon-storefront/internal/pkg/clock"
)

//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review.go -package=mock_commands

type ReviewRepository interface {
	Insert(ctx context.Context, r *review.Review) (string, error)
	FindByID(ctx context.Context, id string) (*review.Review, error)
	SetApproval(ctx context.Context, id string, approved bool) error
}

type ReviewCommands interface {
	Create(ctx context.Context, attrs review.Attributes) (*review.Review, error)
	SetApproval(ctx context.Context, id string, approved bool) (*review.Review, error)
}

type reviewCommandsImpl struct {
	repo    ReviewRepository
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewReviewCommands(repo ReviewRepository, clk clock.Clock, m *metrics.Metrics) ReviewCommands {
	return &reviewCommandsImpl{repo: repo, clock: clk, metrics: m}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, attrs review.Attributes) (*review.Review, error) {
	r, err := review.New(attrs, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	id, err := uc.repo.Insert(ctx, r)
	if err != nil {
		return nil, err
	}
	r.ID = id
	uc.metrics.IncReviewSubmitted(r.Rating)
	return r, nil
}

func (uc *reviewCommandsImpl) SetApproval(ctx context.Context, id string, approved bool) (*review.Review, error) {
	if err := uc.repo.SetApproval(ctx, id, approved); err != nil {
		return nil, notFoundAs(err, review.ErrNotFound)
	}
	return reread(func() (*review.Review, error) { return uc.repo.FindByID(ctx, id) }, review.ErrNotFound)
}
