// Package store defines the flower document store abstraction.
// Handlers depend on the Store interface, never on concrete implementations,
// so they can be tested with mocks and no running database.
package store

import (
	"context"
	"errors"
	"regexp"

	domain "github.com/donaldgifford/flower-finder/pkg/types"
)

// ErrNotFound is returned when no flower document matches a query.
var ErrNotFound = errors.New("flower not found")

// Store defines all data access operations for flower-finder.
type Store interface {
	// FindFlower returns the first flower whose name or localized name
	// contains name, ignoring case. It returns ErrNotFound when nothing
	// matches.
	FindFlower(ctx context.Context, name string) (*domain.Flower, error)

	// InsertFlower adds a flower document to the collection.
	InsertFlower(ctx context.Context, f *domain.Flower) error

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}

// ContainsPattern turns a user supplied name into the regular expression
// sent to the store. Unless raw is set, every metacharacter is escaped so the
// name is matched as a literal substring.
func ContainsPattern(name string, raw bool) string {
	if raw {
		return name
	}
	return regexp.QuoteMeta(name)
}
