package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"
	"github.com/yourorg/shoplist/internal/models"
)

// ProductStore defines only the methods the API layer needs from the store.
type ProductStore interface {
	AddProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	ToggleBought(ctx context.Context, productID string) (*models.ToggleResult, error)
	DeleteProduct(ctx context.Context, productID string) error
	FilterProducts(ctx context.Context, criteria models.FilterCriteria) ([]*models.Product, error)
	Summary(ctx context.Context) (models.Summary, error)
}

type Handler struct {
	store ProductStore
}

func NewHandler(store ProductStore) *Handler {
	return &Handler{
		store: store,
	}
}

// CreateProduct godoc
// @Summary Add a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, r, err, codeInvalidBody, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_name": req.Name,
	})

	product, err := h.store.AddProduct(r.Context(), &models.CreateProductRequest{
		Name:     req.Name,
		Shop:     models.Shop(req.Shop),
		Category: models.Category(req.Category),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Created(w, convertToProductResponse(product))
}

// ListProducts godoc
// @Summary List products, optionally filtered
// @Tags products
// @Produce json
// @Param name query string false "Case-insensitive name substring"
// @Param shop query string false "Shop, or any"
// @Param category query string false "Category, or any"
// @Param status query string false "all, bought or not-bought"
// @Success 200 {object} ListResponse{data=[]ProductResponse}
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := FilterQuery{
		Name:     q.Get("name"),
		Shop:     q.Get("shop"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
	}

	if err := ValidateStruct(query); err != nil {
		handleServiceError(w, r, err)
		return
	}

	products, err := h.store.FilterProducts(r.Context(), models.FilterCriteria{
		Name:     query.Name,
		Shop:     models.Shop(query.Shop),
		Category: models.Category(query.Category),
		Status:   models.Status(query.Status),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = convertToProductResponse(p)
	}

	List(w, responses, len(responses))
}

// GetProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(product))
}

// ToggleBought godoc
// @Summary Flip a product's bought flag
// @Description notified is true only on the first transition to an all-bought list.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ToggleResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/toggle [post]
func (h *Handler) ToggleBought(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.store.ToggleBought(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if result.Notified {
		canonlog.AddRequestFields(r.Context(), map[string]any{
			"all_bought_notified": true,
		})
	}

	Success(w, ToggleResponse{
		Product:   convertToProductResponse(result.Product),
		AllBought: result.AllBought,
		Notified:  result.Notified,
	})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Deleting an unknown id succeeds.
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary godoc
// @Summary List totals
// @Tags products
// @Produce json
// @Success 200 {object} SummaryResponse
// @Router /products/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.Summary(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, SummaryResponse{
		Total:     summary.Total,
		Bought:    summary.Bought,
		Remaining: summary.Remaining,
		AllBought: summary.AllBought,
	})
}

// Catalog godoc
// @Summary Known shops and categories
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func (h *Handler) Catalog(w http.ResponseWriter, _ *http.Request) {
	Success(w, CatalogResponse{
		Shops:      stringsOf(models.Shops()),
		Categories: stringsOf(models.Categories()),
	})
}

func convertToProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Shop:      string(product.Shop),
		Category:  string(product.Category),
		IsBought:  product.IsBought,
		Status:    string(models.StatusOf(product.IsBought)),
		CreatedAt: product.CreatedAt.Format(time.RFC3339),
	}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
