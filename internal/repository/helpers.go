package repository

import "github.com/yourorg/shoplist/internal/models"

func cloneProducts(products []*models.Product) []*models.Product {
	out := make([]*models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

func (r *ProductRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
