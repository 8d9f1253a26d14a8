package contract

import (
	"context"
	"errors"
)

// ErrStorageUnavailable is returned by backends that cannot be reached or written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageRepository is the durable key-value mirror behind the prompt store.
// Values are opaque strings; an absent key is reported with found == false
// and a nil error.
type StorageRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}
