//go:build unit || e2e

package dbtest

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

var _ DBLike = (*mongo.Database)(nil)
