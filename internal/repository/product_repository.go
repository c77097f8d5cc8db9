package repository

import (
	"context"
	"slices"
	"time"

	"github.com/yourorg/shoplist/internal/id"
	"github.com/yourorg/shoplist/internal/models"
)

// ProductRepository keeps products in memory in insertion order.
// It is not safe for concurrent use; the store serializes access.
type ProductRepository struct {
	products []*models.Product
	idGen    func() string
	now      func() time.Time
}

func NewProductRepository() *ProductRepository {
	return newProductRepositoryWithIDs(func() string {
		return id.GenerateIDWithPrefix(models.ProductIDPrefix)
	})
}

// newProductRepositoryWithIDs lets tests control id generation.
func newProductRepositoryWithIDs(idGen func() string) *ProductRepository {
	return &ProductRepository{
		idGen: idGen,
		now:   time.Now,
	}
}

func (r *ProductRepository) Create(_ context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ID:        r.idGen(),
		Name:      req.Name,
		Shop:      req.Shop,
		Category:  req.Category,
		IsBought:  false,
		CreatedAt: r.now(),
	}
	r.products = append(r.products, product)

	return product.Clone(), nil
}

func (r *ProductRepository) GetByID(_ context.Context, productID string) (*models.Product, error) {
	i := r.indexOf(productID)
	if i < 0 {
		return nil, ErrNotFound
	}
	return r.products[i].Clone(), nil
}

// SetBought updates the bought flag in place, keeping the product's position.
func (r *ProductRepository) SetBought(_ context.Context, productID string, isBought bool) (*models.Product, error) {
	i := r.indexOf(productID)
	if i < 0 {
		return nil, ErrNotFound
	}
	r.products[i].IsBought = isBought
	return r.products[i].Clone(), nil
}

func (r *ProductRepository) List(_ context.Context) ([]*models.Product, error) {
	return cloneProducts(r.products), nil
}

func (r *ProductRepository) Delete(_ context.Context, productID string) error {
	i := r.indexOf(productID)
	if i < 0 {
		return ErrNotFound
	}
	r.products = slices.Delete(r.products, i, i+1)
	return nil
}
