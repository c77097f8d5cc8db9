package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/shoplist/internal/apperrors"
	"github.com/yourorg/shoplist/internal/models"
	"github.com/yourorg/shoplist/internal/repository"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []*models.Product
}

func (n *recordingNotifier) AllBought(_ context.Context, last *models.Product) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, last)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func newTestStore(t *testing.T) (*ProductStore, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	return NewProductStore(repository.NewProductRepository(), notifier), notifier
}

func mustAdd(t *testing.T, s *ProductStore, name string, shop models.Shop, category models.Category) *models.Product {
	t.Helper()
	p, err := s.AddProduct(context.Background(), &models.CreateProductRequest{Name: name, Shop: shop, Category: category})
	require.NoError(t, err)
	return p
}

func names(products []*models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestProductStore(t *testing.T) {
	ctx := context.Background()

	t.Run("AddProduct_AppendsNotBoughtWithDistinctIDs", func(t *testing.T) {
		s, _ := newTestStore(t)

		seen := make(map[string]bool)
		for i := range 50 {
			p := mustAdd(t, s, fmt.Sprintf("item %d", i), "", "")
			assert.False(t, p.IsBought)
			assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
		}

		products, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 50)
	})

	t.Run("AddProduct_FailsOnEmptyName", func(t *testing.T) {
		s, _ := newTestStore(t)

		for _, name := range []string{"", "   "} {
			_, err := s.AddProduct(ctx, &models.CreateProductRequest{Name: name, Shop: models.ShopBim})
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "name", validationErr.Field)
		}

		products, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("AddProduct_FailsOnUnknownShopOrCategory", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.AddProduct(ctx, &models.CreateProductRequest{Name: "Milk", Shop: "Carrefour"})
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "shop", validationErr.Field)

		_, err = s.AddProduct(ctx, &models.CreateProductRequest{Name: "Milk", Category: "Süt"})
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "category", validationErr.Field)
	})

	t.Run("AddProduct_AllowsUnsetShopAndCategory", func(t *testing.T) {
		s, _ := newTestStore(t)

		p := mustAdd(t, s, "  Bread ", "", "")
		assert.Equal(t, "Bread", p.Name)
		assert.Empty(t, p.Shop)
		assert.Empty(t, p.Category)
	})

	t.Run("ToggleBought_IsItsOwnInverse", func(t *testing.T) {
		s, _ := newTestStore(t)
		p := mustAdd(t, s, "Milk", models.ShopMigros, models.CategoryBakliyat)
		mustAdd(t, s, "TV", models.ShopTeknosa, models.CategoryElektronik)

		first, err := s.ToggleBought(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, first.Product.IsBought)

		second, err := s.ToggleBought(ctx, p.ID)
		require.NoError(t, err)
		assert.False(t, second.Product.IsBought)

		got, err := s.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.False(t, got.IsBought)
	})

	t.Run("ToggleBought_UnknownIDReturnsNotFound", func(t *testing.T) {
		s, notifier := newTestStore(t)
		mustAdd(t, s, "Milk", "", "")

		_, err := s.ToggleBought(ctx, "prod_missing")
		var notFoundErr *apperrors.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "prod_missing", notFoundErr.ID)
		assert.Zero(t, notifier.count())
	})

	t.Run("DeleteProduct_IsIdempotent", func(t *testing.T) {
		s, _ := newTestStore(t)
		p := mustAdd(t, s, "Milk", "", "")
		keep := mustAdd(t, s, "TV", "", "")

		require.NoError(t, s.DeleteProduct(ctx, p.ID))
		require.NoError(t, s.DeleteProduct(ctx, p.ID))

		products, err := s.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, keep.ID, products[0].ID)

		_, err = s.GetProduct(ctx, p.ID)
		var notFoundErr *apperrors.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("ListProducts_ReturnsSnapshots", func(t *testing.T) {
		s, _ := newTestStore(t)
		mustAdd(t, s, "Milk", "", "")

		products, err := s.ListProducts(ctx)
		require.NoError(t, err)
		products[0].Name = "changed"
		products[0].IsBought = true

		again, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Milk", again[0].Name)
		assert.False(t, again[0].IsBought)
	})

	t.Run("FilterProducts_RejectsUnknownStatus", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.FilterProducts(ctx, models.FilterCriteria{Status: "done"})
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "status", validationErr.Field)
	})

	t.Run("FilterProducts_EmptyCriteriaReturnsFullListInOrder", func(t *testing.T) {
		s, _ := newTestStore(t)
		mustAdd(t, s, "Milk", models.ShopMigros, models.CategoryBakliyat)
		tv := mustAdd(t, s, "TV", models.ShopTeknosa, models.CategoryElektronik)
		mustAdd(t, s, "Bread", models.ShopBim, models.CategoryFirin)
		_, err := s.ToggleBought(ctx, tv.ID)
		require.NoError(t, err)

		for _, criteria := range []models.FilterCriteria{
			{},
			{Status: models.StatusAll, Shop: models.AnyValue, Category: models.AnyValue},
		} {
			got, err := s.FilterProducts(ctx, criteria)
			require.NoError(t, err)
			assert.Equal(t, []string{"Milk", "TV", "Bread"}, names(got))
		}
	})

	t.Run("FilterProducts_BoughtReturnsExactlyBoughtSubset", func(t *testing.T) {
		s, _ := newTestStore(t)
		var bought []string
		for i := range 10 {
			p := mustAdd(t, s, fmt.Sprintf("item %d", i), "", "")
			if i%3 == 0 {
				_, err := s.ToggleBought(ctx, p.ID)
				require.NoError(t, err)
				bought = append(bought, p.Name)
			}
		}

		got, err := s.FilterProducts(ctx, models.FilterCriteria{Status: models.StatusBought})
		require.NoError(t, err)
		assert.Equal(t, bought, names(got))
	})

	t.Run("FilterProducts_CombinesAllCriteria", func(t *testing.T) {
		s, _ := newTestStore(t)
		mustAdd(t, s, "Süt", models.ShopMigros, models.CategorySarkuteri)
		mustAdd(t, s, "Sucuk", models.ShopMigros, models.CategorySarkuteri)
		mustAdd(t, s, "Sucuk", models.ShopBim, models.CategorySarkuteri)
		mustAdd(t, s, "Lego", models.ShopMigros, models.CategoryOyuncak)

		got, err := s.FilterProducts(ctx, models.FilterCriteria{
			Name:     "SUC",
			Shop:     models.ShopMigros,
			Category: models.CategorySarkuteri,
			Status:   models.StatusNotBought,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, models.ShopMigros, got[0].Shop)
		assert.Equal(t, "Sucuk", got[0].Name)
	})

	t.Run("Scenario_MilkAndTV", func(t *testing.T) {
		s, notifier := newTestStore(t)
		milk := mustAdd(t, s, "Milk", models.ShopMigros, models.CategoryBakliyat)
		tv := mustAdd(t, s, "TV", models.ShopTeknosa, models.CategoryElektronik)

		products, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Milk", "TV"}, names(products))
		for _, p := range products {
			assert.False(t, p.IsBought)
		}

		_, err = s.ToggleBought(ctx, milk.ID)
		require.NoError(t, err)

		got, err := s.FilterProducts(ctx, models.FilterCriteria{Status: models.StatusBought})
		require.NoError(t, err)
		assert.Equal(t, []string{"Milk"}, names(got))

		got, err = s.FilterProducts(ctx, models.FilterCriteria{Status: models.StatusNotBought})
		require.NoError(t, err)
		assert.Equal(t, []string{"TV"}, names(got))

		result, err := s.ToggleBought(ctx, tv.ID)
		require.NoError(t, err)
		assert.True(t, result.AllBought)
		assert.True(t, result.Notified)
		assert.Equal(t, 1, notifier.count())

		result, err = s.ToggleBought(ctx, tv.ID)
		require.NoError(t, err)
		assert.False(t, result.AllBought)
		assert.False(t, result.Notified)

		result, err = s.ToggleBought(ctx, tv.ID)
		require.NoError(t, err)
		assert.True(t, result.AllBought)
		assert.False(t, result.Notified)
		assert.Equal(t, 1, notifier.count())

		require.NoError(t, s.DeleteProduct(ctx, tv.ID))
		products, err = s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Milk"}, names(products))

		got, err = s.FilterProducts(ctx, models.FilterCriteria{Shop: models.ShopTeknosa})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("AllBought_FalseOnEmptyList", func(t *testing.T) {
		s, _ := newTestStore(t)

		all, err := s.AllBought(ctx)
		require.NoError(t, err)
		assert.False(t, all)
	})

	t.Run("AllBought_DeletingLastNotBoughtDoesNotNotify", func(t *testing.T) {
		s, notifier := newTestStore(t)
		milk := mustAdd(t, s, "Milk", "", "")
		tv := mustAdd(t, s, "TV", "", "")
		_, err := s.ToggleBought(ctx, milk.ID)
		require.NoError(t, err)

		require.NoError(t, s.DeleteProduct(ctx, tv.ID))

		all, err := s.AllBought(ctx)
		require.NoError(t, err)
		assert.True(t, all)
		assert.Zero(t, notifier.count())
	})

	t.Run("Summary_CountsBoughtAndRemaining", func(t *testing.T) {
		s, _ := newTestStore(t)
		milk := mustAdd(t, s, "Milk", "", "")
		mustAdd(t, s, "TV", "", "")
		mustAdd(t, s, "Bread", "", "")
		_, err := s.ToggleBought(ctx, milk.ID)
		require.NoError(t, err)

		summary, err := s.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.Summary{Total: 3, Bought: 1, Remaining: 2}, summary)
	})

	t.Run("ToggleBought_ConcurrentTogglesNotifyOnce", func(t *testing.T) {
		s, notifier := newTestStore(t)
		var ids []string
		for i := range 20 {
			ids = append(ids, mustAdd(t, s, fmt.Sprintf("item %d", i), "", "").ID)
		}

		var wg sync.WaitGroup
		for _, productID := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.ToggleBought(ctx, productID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		all, err := s.AllBought(ctx)
		require.NoError(t, err)
		assert.True(t, all)
		assert.Equal(t, 1, notifier.count())
	})
}

func TestNewProductStore_NilNotifier(t *testing.T) {
	s := NewProductStore(repository.NewProductRepository(), nil)
	p := mustAdd(t, s, "Milk", "", "")

	result, err := s.ToggleBought(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, result.Notified)
}
