// Package settings contains the key-value repository backing store settings.
package settings

import "context"

type Repository interface {
	// Get returns the value for the key, or shared.ErrorNotFound if the key
	// has never been saved.
	Get(ctx context.Context, key string) (string, error)

	// Set upserts the value for the key.
	Set(ctx context.Context, key, value string) error
}
