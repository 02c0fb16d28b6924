package ports

import (
	"context"
	"io"
)

// FileStore persists uploaded file bytes and returns the public path under
// which they are served. Only the path is recorded on records, never bytes.
type FileStore interface {
	Save(ctx context.Context, prefix, originalName string, r io.Reader) (string, error)
}

// ReplayStore remembers which idempotency keys have already produced a
// record, mapping key to the created record id. Lookup returns ok=false for
// an unseen key. Entries may expire; expiry simply re-enables the create.
type ReplayStore interface {
	Lookup(ctx context.Context, key string) (id string, ok bool, err error)
	Remember(ctx context.Context, key, id string) error
}
