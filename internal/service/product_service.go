package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/yourorg/shoplist/internal/apperrors"
	"github.com/yourorg/shoplist/internal/models"
	"github.com/yourorg/shoplist/internal/repository"
)

type ProductRepository interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	SetBought(ctx context.Context, productID string, isBought bool) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	Delete(ctx context.Context, productID string) error
}

// ProductStore is the single owner of the shopping list. Every operation
// runs to completion under one lock, so callers on different goroutines
// observe the same ordering a single event loop would.
type ProductStore struct {
	mu       sync.Mutex
	repo     ProductRepository
	notifier Notifier

	// allBoughtNotified latches after the first all-bought notification
	// and is never reset.
	allBoughtNotified bool
}

func NewProductStore(repo ProductRepository, notifier Notifier) *ProductStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ProductStore{repo: repo, notifier: notifier}
}

func (s *ProductStore) AddProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	normalized := models.CreateProductRequest{
		Name:     strings.TrimSpace(req.Name),
		Shop:     req.Shop,
		Category: req.Category,
	}
	if err := validateCreate(&normalized); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.repo.Create(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *ProductStore) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", productID)
		}
		return nil, err
	}
	return product, nil
}

// ToggleBought flips the bought flag. The first time the list becomes
// entirely bought the notifier is called; later transitions stay silent.
func (s *ProductStore) ToggleBought(ctx context.Context, productID string) (*models.ToggleResult, error) {
	result, err := s.toggle(ctx, productID)
	if err != nil {
		return nil, err
	}

	if result.Notified {
		s.notifier.AllBought(ctx, result.Product)
	}
	return result, nil
}

func (s *ProductStore) toggle(ctx context.Context, productID string) (*models.ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", productID)
		}
		return nil, err
	}

	product, err := s.repo.SetBought(ctx, productID, !current.IsBought)
	if err != nil {
		return nil, fmt.Errorf("toggle product: %w", err)
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &models.ToggleResult{
		Product:   product,
		AllBought: allBought(products),
	}
	if result.AllBought && !s.allBoughtNotified {
		s.allBoughtNotified = true
		result.Notified = true
	}
	return result, nil
}

// DeleteProduct removes the product. Deleting an unknown id is a no-op.
func (s *ProductStore) DeleteProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, productID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func (s *ProductStore) ListProducts(ctx context.Context) ([]*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.List(ctx)
}

func (s *ProductStore) FilterProducts(ctx context.Context, criteria models.FilterCriteria) ([]*models.Product, error) {
	if !criteria.Status.Valid() {
		return nil, apperrors.NewValidationError("status", "status must be one of: all bought not-bought")
	}

	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if criteria.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// AllBought reports the derived value without touching the latch.
func (s *ProductStore) AllBought(ctx context.Context) (bool, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return false, err
	}
	return allBought(products), nil
}

func (s *ProductStore) Summary(ctx context.Context) (models.Summary, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return models.Summary{}, err
	}

	summary := models.Summary{Total: len(products), AllBought: allBought(products)}
	for _, p := range products {
		if p.IsBought {
			summary.Bought++
		}
	}
	summary.Remaining = summary.Total - summary.Bought
	return summary, nil
}

func allBought(products []*models.Product) bool {
	if len(products) == 0 {
		return false
	}
	for _, p := range products {
		if !p.IsBought {
			return false
		}
	}
	return true
}

func validateCreate(req *models.CreateProductRequest) error {
	if req.Name == "" {
		return apperrors.NewValidationError("name", "name is required")
	}
	if !req.Shop.Valid() {
		return apperrors.NewValidationError("shop", fmt.Sprintf("unknown shop %q", req.Shop))
	}
	if !req.Category.Valid() {
		return apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", req.Category))
	}
	return nil
}
