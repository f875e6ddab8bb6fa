package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var productsBucket = []byte("products")

// BoltStore keeps the catalog in a local bbolt file, one bucket keyed by
// product id with JSON values. Durable single-node storage without an
// external datastore.
type BoltStore struct {
	db *bolt.DB
}

func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(productsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error { return s.db.Close() }

func (s *BoltStore) Ping(ctx context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(productsBucket) == nil {
			return fmt.Errorf("bucket %s missing", productsBucket)
		}
		return nil
	})
}

func (s *BoltStore) Scan(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, 16)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(productsBucket).ForEach(func(_, v []byte) error {
			var p Product
			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}
			out = append(out, p)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BoltStore) Get(ctx context.Context, id string) (Product, bool, error) {
	var (
		p  Product
		ok bool
	)

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(productsBucket).Get([]byte(id))
		if v == nil {
			return nil
		}
		ok = true
		return json.Unmarshal(v, &p)
	})
	if err != nil {
		return Product{}, false, err
	}
	return p, ok, nil
}

func (s *BoltStore) Put(ctx context.Context, p Product) error {
	v, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(productsBucket).Put([]byte(p.ID), v)
	})
}

func (s *BoltStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(productsBucket).Delete([]byte(id))
	})
}
