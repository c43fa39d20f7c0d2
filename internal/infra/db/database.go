package db

import (
	"context"
	"log/slog"

	"salon-storefront/internal/pkg/config"
	"salon-storefront/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	CollectionProducts = "products"
	CollectionBookings = "bookings"
	CollectionReviews  = "reviews"
	CollectionServices = "services"
	CollectionGallery  = "gallery"
)

// Connect opens a client, verifies it with a ping and returns a cleanup
// that disconnects it.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, func(context.Context), error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to mongo")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errs.Wrap(err, "failed to ping mongo")
	}

	cleanup := func(ctx context.Context) {
		if err := client.Disconnect(ctx); err != nil {
			slog.Error("Error disconnecting mongo client", "error", err)
		}
	}

	return client, cleanup, nil
}

// Pinger checks that the primary is reachable.
type Pinger struct {
	client *mongo.Client
}

func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
