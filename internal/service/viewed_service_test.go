package service

import (
	"context"
	"testing"

	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewedFixture(t *testing.T) (ViewedProductService, ProductService) {
	t.Helper()
	repos := repository.NewMemory()
	return NewViewedProductService(repos.Viewed, repos.Products), NewProductService(repos.Products)
}

func seedProduct(t *testing.T, products ProductService, name string) int {
	t.Helper()
	p, err := products.Create(context.Background(), dto.CreateProductRequest{
		Name:     name,
		Brand:    "B",
		Price:    "80.00",
		Image:    "http://i",
		Category: "Unissex",
		Notes:    "n",
	})
	require.NoError(t, err)
	return p.ID
}

func TestAddViewedProductIdempotent(t *testing.T) {
	viewed, products := newViewedFixture(t)
	ctx := context.Background()
	productID := seedProduct(t, products, "Azzaro")

	first, err := viewed.Add(ctx, dto.AddViewedProductRequest{LeadID: 1, ProductID: productID})
	require.NoError(t, err)

	second, err := viewed.Add(ctx, dto.AddViewedProductRequest{LeadID: 1, ProductID: productID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ViewedAt, second.ViewedAt)

	list, err := viewed.ListProducts(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRemoveViewedProduct(t *testing.T) {
	viewed, products := newViewedFixture(t)
	ctx := context.Background()
	productID := seedProduct(t, products, "Azzaro")

	_, err := viewed.Add(ctx, dto.AddViewedProductRequest{LeadID: 1, ProductID: productID})
	require.NoError(t, err)

	require.NoError(t, viewed.Remove(ctx, 1, productID))

	// Removing an absent pair is a not-found outcome, never a panic or 500.
	err = viewed.Remove(ctx, 1, productID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = viewed.Remove(ctx, 7, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListViewedProductsDropsDeleted(t *testing.T) {
	viewed, products := newViewedFixture(t)
	ctx := context.Background()

	keptID := seedProduct(t, products, "Kept")
	goneID := seedProduct(t, products, "Gone")

	_, err := viewed.Add(ctx, dto.AddViewedProductRequest{LeadID: 1, ProductID: keptID})
	require.NoError(t, err)
	_, err = viewed.Add(ctx, dto.AddViewedProductRequest{LeadID: 1, ProductID: goneID})
	require.NoError(t, err)

	require.NoError(t, products.Delete(ctx, goneID))

	list, err := viewed.ListProducts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kept", list[0].Name)
}

func TestListViewedProductsEmptyLead(t *testing.T) {
	viewed, _ := newViewedFixture(t)

	list, err := viewed.ListProducts(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, list)
}
