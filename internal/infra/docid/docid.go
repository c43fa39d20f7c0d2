// Package docid translates between MongoDB ObjectIDs and the opaque string
// ids used on the wire. Nothing outside the infra layer sees an ObjectID.
package docid

import (
	"salon-storefront/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToWire renders id as its 24-character hex form.
func ToWire(id primitive.ObjectID) string {
	return id.Hex()
}

// FromWire parses a wire id. Anything that is not a 24-character hex string
// fails with errs.ErrInvalidIdentifier.
func FromWire(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, errs.Mark(errs.Wrapf(err, "parse id %q", s), errs.ErrInvalidIdentifier)
	}
	return id, nil
}

// Validate reports whether s is a well-formed wire id.
func Validate(s string) error {
	_, err := FromWire(s)
	return err
}
