package storage

import (
	"context"
	"errors"

	"github.com/yourname/dreamwell/internal"
)

var ErrNotFound = errors.New("storage: key not found")

// KeyValue is a persistence slot provider. Put replaces the whole value for a
// key; readers never observe a partial write.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

type AssessmentRepository interface {
	Load(ctx context.Context) []internal.Assessment
	Append(ctx context.Context, a internal.Assessment) ([]internal.Assessment, error)
	List() []internal.Assessment
}
