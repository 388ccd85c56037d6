package product

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Snapshot is the catalog grouped by kind, read once and handed to whatever
// prices line items. Nothing mutates it after Build.
type Snapshot struct {
	CakeTypes    []Product `json:"cakeType"`
	CakeSizes    []Product `json:"cakeSize"`
	CakeFillings []Product `json:"cakeFilling"`
}

func Build(products []Product) Snapshot {
	s := Snapshot{CakeTypes: []Product{}, CakeSizes: []Product{}, CakeFillings: []Product{}}
	for _, p := range products {
		switch p.Type {
		case KindCakeType:
			s.CakeTypes = append(s.CakeTypes, p)
		case KindCakeSize:
			s.CakeSizes = append(s.CakeSizes, p)
		case KindCakeFilling:
			s.CakeFillings = append(s.CakeFillings, p)
		}
	}
	return s
}

// Find looks id up within one kind.
func (s Snapshot) Find(kind Kind, id string) (Product, bool) {
	var list []Product
	switch kind {
	case KindCakeType:
		list = s.CakeTypes
	case KindCakeSize:
		list = s.CakeSizes
	case KindCakeFilling:
		list = s.CakeFillings
	}
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Cache stores an encoded snapshot between requests.
type Cache interface {
	Get(ctx context.Context) ([]byte, bool, error)
	Set(ctx context.Context, b []byte) error
	Delete(ctx context.Context) error
}

const snapshotKey = "bakery:catalog:snapshot"

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisCache) Set(ctx context.Context, b []byte) error {
	return c.rdb.Set(ctx, snapshotKey, b, c.ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context) error {
	return c.rdb.Del(ctx, snapshotKey).Err()
}

// Loader fetches snapshots through an optional cache. Cache failures are
// logged and fall through to the repository.
type Loader struct {
	repo  Repository
	cache Cache
}

func NewLoader(repo Repository, cache Cache) *Loader {
	return &Loader{repo: repo, cache: cache}
}

func (l *Loader) Snapshot(ctx context.Context) (Snapshot, error) {
	if l.cache != nil {
		b, ok, err := l.cache.Get(ctx)
		if err != nil {
			log.Printf("[catalog] cache get: %v", err)
		} else if ok {
			var s Snapshot
			if err := json.Unmarshal(b, &s); err == nil {
				return s, nil
			}
			log.Printf("[catalog] cache entry unreadable, reloading")
		}
	}

	products, err := l.repo.List(ctx, Query{})
	if err != nil {
		return Snapshot{}, err
	}
	s := Build(products)

	if l.cache != nil {
		if b, err := json.Marshal(s); err == nil {
			if err := l.cache.Set(ctx, b); err != nil {
				log.Printf("[catalog] cache set: %v", err)
			}
		}
	}
	return s, nil
}

// Invalidate drops the cached snapshot after a catalog write.
func (l *Loader) Invalidate(ctx context.Context) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Delete(ctx); err != nil {
		log.Printf("[catalog] cache delete: %v", err)
	}
}
