package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/shopbot/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/shopbot/internal/catalog/app"
)

var ErrUnknownItem = errors.New("unknown item")

type Service struct {
	repo    CartRepo
	catalog ProductChecker
}

func NewService(repo CartRepo, catalog ProductChecker) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
	}
}

func (s *Service) GetCart(ctx context.Context, userID int64) (domain.Cart, error) {
	return s.repo.Get(ctx, userID)
}

// AddItem increments the quantity of code for the user. The code must
// exist in the catalog; anything else is ErrUnknownItem so a stale
// callback token can be answered softly instead of crashing dispatch.
func (s *Service) AddItem(ctx context.Context, userID int64, code string, delta int64) (domain.Cart, error) {
	if _, err := s.catalog.GetProduct(ctx, code); err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
			return domain.Cart{}, ErrUnknownItem
		}
		return domain.Cart{}, fmt.Errorf("check product %s: %w", code, err)
	}

	if err := s.repo.AddItem(ctx, userID, code, delta); err != nil {
		return domain.Cart{}, err
	}

	return s.repo.Get(ctx, userID)
}

// Clear empties the user's cart. Clearing an already empty cart succeeds.
func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.repo.Clear(ctx, userID)
}
