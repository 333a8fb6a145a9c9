package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dwikikusuma/shopbot/internal/catalog/app"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

const validCatalog = `
products:
  - code: A12
    name: Keyboard
    price: 9000
    image: https://cdn.example.com/a12.jpg
    description: Mechanical keyboard
  - code: B21
    name: Mouse
    price: 12000
`

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		repo, err := Load(writeCatalog(t, validCatalog), "BRL")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 products, got %d", len(items))
		}

		p, err := repo.Get(context.Background(), "A12")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if p.Price.Amount != 9000 || p.Price.Currency != "BRL" {
			t.Fatalf("unexpected price: %+v", p.Price)
		}
	})

	t.Run("unknown code -> not found", func(t *testing.T) {
		repo, err := Load(writeCatalog(t, validCatalog), "BRL")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Get(context.Background(), "Z99"); !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		_, err := Load(writeCatalog(t, `
products:
  - code: A12
    name: Keyboard
    price: 9000
  - code: A12
    name: Other
    price: 100
`), "BRL")
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		_, err := Load(writeCatalog(t, `
products:
  - code: A12
    name: Keyboard
    price: 0
`), "BRL")
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "BRL"); err == nil {
			t.Fatal("expected error")
		}
	})
}
