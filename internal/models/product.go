package models

import (
	"slices"
	"strings"
	"time"
)

type Shop string

const (
	ShopMigros  Shop = "Migros"
	ShopTeknosa Shop = "Teknosa"
	ShopBim     Shop = "Bim"
)

type Category string

const (
	CategoryElektronik Category = "Elektronik"
	CategorySarkuteri  Category = "Şarküteri"
	CategoryOyuncak    Category = "Oyuncak"
	CategoryBakliyat   Category = "Bakliyat"
	CategoryFirin      Category = "Fırın"
)

// AnyValue is accepted by filters in place of an empty shop or category.
const AnyValue = "any"

var (
	shops      = []Shop{ShopMigros, ShopTeknosa, ShopBim}
	categories = []Category{CategoryElektronik, CategorySarkuteri, CategoryOyuncak, CategoryBakliyat, CategoryFirin}
)

// Shops returns the known shops in display order.
func Shops() []Shop {
	return slices.Clone(shops)
}

// Categories returns the known categories in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

// Valid reports whether s is unset or one of the known shops.
func (s Shop) Valid() bool {
	return s == "" || slices.Contains(shops, s)
}

// Valid reports whether c is unset or one of the known categories.
func (c Category) Valid() bool {
	return c == "" || slices.Contains(categories, c)
}

type Status string

const (
	StatusAll       Status = "all"
	StatusBought    Status = "bought"
	StatusNotBought Status = "not-bought"
)

func (s Status) Valid() bool {
	switch s {
	case "", StatusAll, StatusBought, StatusNotBought:
		return true
	}
	return false
}

func (s Status) Label() string {
	if s == StatusBought {
		return "Bought"
	}
	return "Not Bought"
}

// StatusOf maps the bought flag to its display status.
func StatusOf(isBought bool) Status {
	if isBought {
		return StatusBought
	}
	return StatusNotBought
}

// ProductIDPrefix starts every product id.
const ProductIDPrefix = "prod_"

type Product struct {
	ID        string
	Name      string
	Shop      Shop
	Category  Category
	IsBought  bool
	CreatedAt time.Time
}

// Clone returns a copy that shares no state with p.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

type CreateProductRequest struct {
	Name     string
	Shop     Shop
	Category Category
}

// FilterCriteria selects a subset of the list. Zero values match everything.
type FilterCriteria struct {
	Name     string
	Shop     Shop
	Category Category
	Status   Status
}

// Matches reports whether p satisfies every criterion.
func (f FilterCriteria) Matches(p *Product) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Shop != "" && f.Shop != AnyValue && p.Shop != f.Shop {
		return false
	}
	if f.Category != "" && f.Category != AnyValue && p.Category != f.Category {
		return false
	}
	switch f.Status {
	case StatusBought:
		return p.IsBought
	case StatusNotBought:
		return !p.IsBought
	}
	return true
}

type ToggleResult struct {
	Product *Product
	// AllBought is true when every product in the list is bought after the toggle.
	AllBought bool
	// Notified is true only for the toggle that fired the one-shot notification.
	Notified bool
}

type Summary struct {
	Total     int
	Bought    int
	Remaining int
	AllBought bool
}
