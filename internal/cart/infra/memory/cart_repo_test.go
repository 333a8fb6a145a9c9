package memory

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestAddItemAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	t.Run("first get is an empty cart", func(t *testing.T) {
		cart, err := repo.Get(ctx, 1)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !cart.IsEmpty() {
			t.Fatalf("expected empty cart, got %+v", cart)
		}
	})

	t.Run("increments accumulate", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if err := repo.AddItem(ctx, 2, "A12", 1); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
		cart, _ := repo.Get(ctx, 2)
		if got := cart.Quantity("A12"); got != 3 {
			t.Fatalf("expected quantity 3, got %d", got)
		}
	})

	t.Run("quantity reaching zero removes the entry", func(t *testing.T) {
		repo.AddItem(ctx, 3, "B21", 2)
		repo.AddItem(ctx, 3, "B21", -2)
		cart, _ := repo.Get(ctx, 3)
		if !cart.IsEmpty() {
			t.Fatalf("expected empty cart, got %+v", cart)
		}
	})

	t.Run("carts are isolated per user", func(t *testing.T) {
		repo.AddItem(ctx, 4, "A12", 1)
		cart, _ := repo.Get(ctx, 5)
		if !cart.IsEmpty() {
			t.Fatalf("expected user 5 cart empty, got %+v", cart)
		}
	})
}

func TestClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	if err := repo.Clear(ctx, 7); err != nil {
		t.Fatalf("clear on empty cart: %v", err)
	}

	repo.AddItem(ctx, 7, "A12", 2)
	if err := repo.Clear(ctx, 7); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := repo.Clear(ctx, 7); err != nil {
		t.Fatalf("second clear: %v", err)
	}

	cart, _ := repo.Get(ctx, 7)
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestConcurrentAddItemIncrement(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	const userID = int64(99)
	const N = 100

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			return repo.AddItem(ctx, userID, "A12", 1)
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	cart, err := repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := cart.Quantity("A12"); got != N {
		t.Fatalf("expected quantity=%d, got=%d", N, got)
	}
}

func TestConcurrentUsersDoNotInterfere(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	const users = 20
	const addsPerUser = 50

	g, ctx := errgroup.WithContext(ctx)
	for u := int64(0); u < users; u++ {
		u := u
		g.Go(func() error {
			for i := 0; i < addsPerUser; i++ {
				if err := repo.AddItem(ctx, u, "B21", 1); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent adds failed: %v", err)
	}

	for u := int64(0); u < users; u++ {
		cart, _ := repo.Get(ctx, u)
		if got := cart.Quantity("B21"); got != addsPerUser {
			t.Fatalf("user %d: expected quantity=%d, got=%d", u, addsPerUser, got)
		}
	}
}
