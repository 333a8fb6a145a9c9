// Package memory holds cart state for the lifetime of the process. Carts
// are sharded by user id so updates for different users never contend on
// the same lock, while updates for one user are serialized by the shard
// mutex.
package memory

import (
	"context"
	"hash/fnv"
	"sort"
	"strconv"
	"sync"

	"github.com/dwikikusuma/shopbot/internal/cart/domain"
)

const shardCount = 16

type shard struct {
	mu    sync.Mutex
	carts map[int64]map[string]int64
}

type CartRepo struct {
	shards [shardCount]*shard
}

func NewCartRepo() *CartRepo {
	r := &CartRepo{}
	for i := range r.shards {
		r.shards[i] = &shard{carts: make(map[int64]map[string]int64)}
	}
	return r
}

func (r *CartRepo) shardFor(userID int64) *shard {
	h := fnv.New32a()
	h.Write([]byte(strconv.FormatInt(userID, 10)))
	return r.shards[h.Sum32()%shardCount]
}

// Get returns a copy of the user's cart, empty if the user has none yet.
func (r *CartRepo) Get(ctx context.Context, userID int64) (domain.Cart, error) {
	s := r.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := domain.Cart{UserID: userID}
	for code, qty := range s.carts[userID] {
		cart.Items = append(cart.Items, domain.CartItem{Code: code, Quantity: qty})
	}
	sort.Slice(cart.Items, func(i, j int) bool {
		return cart.Items[i].Code < cart.Items[j].Code
	})
	return cart, nil
}

func (r *CartRepo) AddItem(ctx context.Context, userID int64, code string, delta int64) error {
	s := r.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.carts[userID]
	if !ok {
		m = make(map[string]int64)
		s.carts[userID] = m
	}

	m[code] += delta
	if m[code] <= 0 {
		delete(m, code)
	}
	return nil
}

func (r *CartRepo) Clear(ctx context.Context, userID int64) error {
	s := r.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
