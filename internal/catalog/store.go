package catalog

import "context"

// Store is the storage collaborator: a single-primary-key record store with
// point get/put/delete and a full-table scan. Put is an upsert; partial
// updates are merged in the service before the write.
type Store interface {
	Ping(ctx context.Context) error
	Scan(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, bool, error)
	Put(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
}
