// Package file loads the catalog from a YAML file once at startup. The
// catalog never changes at runtime, so the repo serves reads from memory
// without locking.
package file

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dwikikusuma/shopbot/internal/catalog/app"
	"github.com/dwikikusuma/shopbot/internal/catalog/domain"
)

type productEntry struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Price       int64  `yaml:"price"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

type catalogFile struct {
	Products []productEntry `yaml:"products"`
}

type ProductRepo struct {
	items  []domain.Product
	byCode map[string]domain.Product
}

// Load reads the catalog file and builds the in-memory repo. Duplicate or
// empty codes and non-positive prices fail the load: a malformed catalog
// should stop the process at startup, not surface mid-conversation.
func Load(path, currency string) (*ProductRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	repo := &ProductRepo{
		byCode: make(map[string]domain.Product, len(cf.Products)),
	}
	for i, e := range cf.Products {
		if e.Code == "" {
			return nil, fmt.Errorf("catalog entry %d: code is required", i)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("catalog entry %q: name is required", e.Code)
		}
		if e.Price <= 0 {
			return nil, fmt.Errorf("catalog entry %q: price must be positive, got %d", e.Code, e.Price)
		}
		if _, dup := repo.byCode[e.Code]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate code", e.Code)
		}

		p := domain.Product{
			Code: e.Code,
			Name: e.Name,
			Price: domain.Money{
				Currency: currency,
				Amount:   e.Price,
			},
			Image:       e.Image,
			Description: e.Description,
		}
		repo.byCode[e.Code] = p
		repo.items = append(repo.items, p)
	}

	return repo, nil
}

func (r *ProductRepo) Get(ctx context.Context, code string) (domain.Product, error) {
	p, ok := r.byCode[code]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.items))
	copy(out, r.items)
	return out, nil
}
