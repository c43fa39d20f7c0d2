package commands

import (
	"context"
	"log/slog"

	"salon-storefront/internal/domain/product"
	"salon-storefront/internal/domain/review"
	"salon-storefront/internal/domain/service"
	"salon-storefront/internal/metrics"
	"salon-storefront/internal/pkg/clock"
	"salon-storefront/internal/pkg/errs"
)

//go:generate mockgen -source=seed.go -destination=../../../tests/mock/commands/seed.go -package=mock_commands

const (
	SeedMessageInserted = "Data seeded successfully"
	SeedMessageSkipped  = "Data already seeded"
)

// SeedWriter is the write surface the demo data loader needs. Each
// Insert* call must store its batch in a single round trip.
type SeedWriter interface {
	CountProducts(ctx context.Context) (int64, error)
	InsertProducts(ctx context.Context, ps []*product.Product) error
	InsertServices(ctx context.Context, ss []*service.Service) error
	InsertReviews(ctx context.Context, rs []*review.Review) error
}

type SeedResult struct {
	Seeded  bool
	Message string
}

type SeedCommands interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

type seedCommandsImpl struct {
	writer  SeedWriter
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewSeedCommands(writer SeedWriter, clk clock.Clock, m *metrics.Metrics) SeedCommands {
	return &seedCommandsImpl{writer: writer, clock: clk, metrics: m}
}

// Seed loads the demo catalogue once. The guard is "any product exists",
// so services and reviews are not checked; two concurrent first calls may
// both insert.
func (uc *seedCommandsImpl) Seed(ctx context.Context) (*SeedResult, error) {
	n, err := uc.writer.CountProducts(ctx)
	if err != nil {
		uc.metrics.IncSeed(metrics.SeedFailed)
		return nil, err
	}
	if n > 0 {
		uc.metrics.IncSeed(metrics.SeedSkipped)
		return &SeedResult{Seeded: false, Message: SeedMessageSkipped}, nil
	}

	now := uc.clock.Now()
	ps, ss, rs, err := demoCatalogue(now)
	if err != nil {
		uc.metrics.IncSeed(metrics.SeedFailed)
		return nil, errs.Wrap(err, "build demo catalogue")
	}

	if err := uc.writer.InsertProducts(ctx, ps); err != nil {
		uc.metrics.IncSeed(metrics.SeedFailed)
		return nil, err
	}
	if err := uc.writer.InsertServices(ctx, ss); err != nil {
		uc.metrics.IncSeed(metrics.SeedFailed)
		return nil, err
	}
	if err := uc.writer.InsertReviews(ctx, rs); err != nil {
		uc.metrics.IncSeed(metrics.SeedFailed)
		return nil, err
	}

	slog.InfoContext(ctx, "demo data seeded", "products", len(ps), "services", len(ss), "reviews", len(rs))
	uc.metrics.IncSeed(metrics.SeedInserted)
	return &SeedResult{Seeded: true, Message: SeedMessageInserted}, nil
}
