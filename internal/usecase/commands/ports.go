package commands

import (
	"salon-storefront/internal/infra"
	"salon-storefront/internal/pkg/errs"
)

// notFoundAs swaps a store NOT_FOUND for the entity's own sentinel so the
// handler can report it by name. Other errors pass through untouched.
func notFoundAs(err, sentinel error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

// reread fetches a document right after a write. A concurrent delete
// between the two surfaces as the entity's not-found error.
func reread[T any](fetch func() (*T, error), sentinel error) (*T, error) {
	v, err := fetch()
	if err != nil {
		return nil, errs.Wrap(notFoundAs(err, sentinel), "reread after update")
	}
	return v, nil
}
