package catalog

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemStore keeps the catalog in a mutex-guarded map. Used for tests and
// local runs without a datastore.
type MemStore struct {
	mu sync.RWMutex
	m  map[string]Product
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string]Product{}}
}

// NewSeededMemStore returns a MemStore preloaded with a couple of records so
// a fresh local run has something to browse.
func NewSeededMemStore() *MemStore {
	s := NewMemStore()
	now := time.Now().UTC()
	s.m["p1"] = Product{
		ID: "p1", Name: "Camiseta Básica", Description: "Camiseta de algodón",
		Price: 19.99, Category: "Ropa", Stock: 50,
		CreatedAt: now, UpdatedAt: now,
	}
	s.m["p2"] = Product{
		ID: "p2", Name: "Zapatillas Runner", Description: "Zapatillas para correr",
		Price: 89.99, Category: "Zapatos", Stock: 25,
		CreatedAt: now, UpdatedAt: now,
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Scan(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[id]
	return p, ok, nil
}

func (s *MemStore) Put(ctx context.Context, p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[p.ID] = p
	return nil
}

func (s *MemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, id)
	return nil
}
