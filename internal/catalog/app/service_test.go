package app

import (
	"context"
	"testing"

	"github.com/dwikikusuma/shopbot/internal/catalog/domain"
)

type fakeRepo struct{}

func (fakeRepo) Get(ctx context.Context, code string) (domain.Product, error) {
	if code == "A12" {
		return domain.Product{Code: "A12", Name: "Keyboard"}, nil
	}
	return domain.Product{}, ErrNotFound
}

func (fakeRepo) List(ctx context.Context) ([]domain.Product, error) {
	return []domain.Product{{Code: "A12", Name: "Keyboard"}}, nil
}

func TestGetProduct(t *testing.T) {
	svc := NewService(fakeRepo{})

	t.Run("blank code -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "   ")
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown code -> not found", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "Z99")
		if err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("known code -> product", func(t *testing.T) {
		p, err := svc.GetProduct(context.Background(), "A12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Keyboard" {
			t.Fatalf("expected Keyboard, got %q", p.Name)
		}
	})
}
