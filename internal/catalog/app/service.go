package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/shopbot/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, code string) (domain.Product, error) {
	if strings.TrimSpace(code) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, code)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}
