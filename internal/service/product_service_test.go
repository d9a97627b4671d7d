package service

import (
	"context"
	"testing"

	"github.com/waltinho0807/perfumariaCalegari/internal/dto"
	"github.com/waltinho0807/perfumariaCalegari/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService() ProductService {
	return NewProductService(repository.NewMemory().Products)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestCreateProductDefaults(t *testing.T) {
	svc := newProductService()

	p, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Test",
		Brand:    "X",
		Price:    "100.00",
		Image:    "http://i",
		Category: "Masculino",
		Notes:    "n",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "100.00", p.Price)
	assert.Equal(t, 0, p.Stock)
	assert.False(t, p.IsPromotion)
	assert.Nil(t, p.PromoPrice)
}

func TestCreateProductRejectsBadPrice(t *testing.T) {
	svc := newProductService()

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Test",
		Brand:    "X",
		Price:    "cem reais",
		Image:    "http://i",
		Category: "Masculino",
		Notes:    "n",
	})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestUpdateProductPartialPatch(t *testing.T) {
	svc := newProductService()

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Test",
		Brand:    "X",
		Price:    "100.00",
		Image:    "http://i",
		Category: "Masculino",
		Notes:    "n",
	})
	require.NoError(t, err)

	patched, err := svc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Stock: intPtr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, patched.Stock)
	assert.Equal(t, "Test", patched.Name)
	assert.Equal(t, "100.00", patched.Price)
	assert.Equal(t, "X", patched.Brand)
}

func TestUpdateProductPromotion(t *testing.T) {
	svc := newProductService()

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Test",
		Brand:    "X",
		Price:    "199.90",
		Image:    "http://i",
		Category: "Feminino",
		Notes:    "floral",
	})
	require.NoError(t, err)

	patched, err := svc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		IsPromotion: boolPtr(true),
		PromoPrice:  strPtr("149.9"),
	})
	require.NoError(t, err)

	assert.True(t, patched.IsPromotion)
	require.NotNil(t, patched.PromoPrice)
	assert.Equal(t, "149.90", *patched.PromoPrice)
}

func TestUpdateProductUnknownID(t *testing.T) {
	svc := newProductService()

	_, err := svc.Update(context.Background(), 99, dto.UpdateProductRequest{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := newProductService()

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Test",
		Brand:    "X",
		Price:    "100.00",
		Image:    "http://i",
		Category: "Masculino",
		Notes:    "n",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProductsByCategory(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	for _, c := range []string{"Masculino", "Feminino", "Masculino"} {
		_, err := svc.Create(ctx, dto.CreateProductRequest{
			Name:     "P-" + c,
			Brand:    "B",
			Price:    "50.00",
			Image:    "http://i",
			Category: c,
			Notes:    "n",
		})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, dto.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	masc, err := svc.List(ctx, dto.ProductFilter{Category: "Masculino"})
	require.NoError(t, err)
	assert.Len(t, masc, 2)
}
