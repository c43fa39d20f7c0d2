// Package docstore is a thin typed layer over a MongoDB collection. Every
// method takes and returns wire ids; conversion happens through docid before
// the collection is touched, so a malformed id never reaches the store.
package docstore

import (
	"context"
	"errors"

	"salon-storefront/internal/infra"
	"salon-storefront/internal/infra/docid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/docstore/store.go -package=mock_docstore

// Collection is the subset of *mongo.Collection the store relies on.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

var _ Collection = (*mongo.Collection)(nil)

// Query narrows a Find. A nil Filter matches everything; Limit <= 0 means
// no limit.
type Query struct {
	Filter bson.D
	Sort   bson.D
	Limit  int64
}

// Store reads and writes documents of type T. T is expected to map its id
// to `bson:"_id,omitempty"` as a primitive.ObjectID.
type Store[T any] struct {
	coll Collection
	name string
}

func New[T any](coll Collection, name string) *Store[T] {
	return &Store[T]{coll: coll, name: name}
}

func (s *Store[T]) Name() string {
	return s.name
}

// Insert stores doc and returns the id assigned by the store.
func (s *Store[T]) Insert(ctx context.Context, doc *T) (string, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", infra.WrapRepoErr("failed to insert into "+s.name, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", infra.WrapRepoErr("unexpected id type returned by insert into "+s.name, nil)
	}
	return docid.ToWire(oid), nil
}

// InsertMany stores docs in one call.
func (s *Store[T]) InsertMany(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	if _, err := s.coll.InsertMany(ctx, batch); err != nil {
		return infra.WrapRepoErr("failed to insert batch into "+s.name, err)
	}
	return nil
}

func (s *Store[T]) Find(ctx context.Context, q Query) ([]T, error) {
	filter := q.Filter
	if filter == nil {
		filter = bson.D{}
	}
	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query "+s.name, err)
	}
	docs := make([]T, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode "+s.name, err)
	}
	return docs, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := docid.FromWire(id)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := s.coll.FindOne(ctx, byID(oid)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr(s.name+" document not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find "+s.name+" by id", err)
	}
	return &doc, nil
}

// ReplaceByID swaps the whole stored document for doc, keeping the id.
func (s *Store[T]) ReplaceByID(ctx context.Context, id string, doc *T) error {
	oid, err := docid.FromWire(id)
	if err != nil {
		return err
	}
	res, err := s.coll.ReplaceOne(ctx, byID(oid), doc)
	if err != nil {
		return infra.WrapRepoErr("failed to replace "+s.name, err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr(s.name+" document not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetByID merges fields into the stored document, leaving the rest as is.
func (s *Store[T]) SetByID(ctx context.Context, id string, fields bson.D) error {
	oid, err := docid.FromWire(id)
	if err != nil {
		return err
	}
	res, err := s.coll.UpdateOne(ctx, byID(oid), bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return infra.WrapRepoErr("failed to update "+s.name, err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr(s.name+" document not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *Store[T]) DeleteByID(ctx context.Context, id string) error {
	oid, err := docid.FromWire(id)
	if err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, byID(oid))
	if err != nil {
		return infra.WrapRepoErr("failed to delete from "+s.name, err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr(s.name+" document not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *Store[T]) Count(ctx context.Context, filter bson.D) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count "+s.name, err)
	}
	return n, nil
}

func byID(oid primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: oid}}
}
