package api

// CreateProductRequest represents the request body for adding a product.
// @Description Request payload for adding a product to the list
type CreateProductRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Shop     string `json:"shop" validate:"shop"`
	Category string `json:"category" validate:"category"`
}

// ProductResponse represents a product resource in API responses.
// @Description Shopping list entry
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Shop      string `json:"shop"`
	Category  string `json:"category"`
	IsBought  bool   `json:"is_bought"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ToggleResponse is returned after flipping a product's bought flag.
// @Description Result of toggling the bought flag
type ToggleResponse struct {
	Product   ProductResponse `json:"product"`
	AllBought bool            `json:"all_bought"`
	Notified  bool            `json:"notified"`
}

// FilterQuery holds the list query parameters. Empty values match everything.
type FilterQuery struct {
	Name     string `validate:"max=255"`
	Shop     string `validate:"omitempty,shop|eq=any"`
	Category string `validate:"omitempty,category|eq=any"`
	Status   string `validate:"omitempty,oneof=all bought not-bought"`
}

// CatalogResponse lists the values accepted for shop and category.
// @Description Known shops and categories
type CatalogResponse struct {
	Shops      []string `json:"shops"`
	Categories []string `json:"categories"`
}

// SummaryResponse aggregates the list state.
// @Description List totals
type SummaryResponse struct {
	Total     int  `json:"total"`
	Bought    int  `json:"bought"`
	Remaining int  `json:"remaining"`
	AllBought bool `json:"all_bought"`
}
