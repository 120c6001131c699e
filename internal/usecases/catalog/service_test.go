package catalog

import (
	"context"
	"testing"

	"github.com/precifica/cost-manager-api/infrastructure/repository/mocks"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSaveRecipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockIngredientRepo := mocks.NewMockIngredientRepository(ctrl)
	mockRecipeRepo := mocks.NewMockRecipeRepository(ctrl)
	service := NewService(mockProductRepo, mockIngredientRepo, mockRecipeRepo)

	product := &domain.Product{ID: 1, Name: "X-Tudo", SalePrice: 30}

	t.Run("recalcula o CMV a partir dos insumos", func(t *testing.T) {
		// Farinha: R$ 20 por 5kg -> R$ 4/kg; Queijo: R$ 40 por 2kg -> R$ 20/kg
		mockProductRepo.EXPECT().GetProductByID(int64(1)).Return(product, nil)
		mockIngredientRepo.EXPECT().GetIngredientByID(int64(10)).
			Return(&domain.Ingredient{ID: 10, Name: "Farinha", PackagePrice: 20, PackageQuantity: 5}, nil)
		mockIngredientRepo.EXPECT().GetIngredientByID(int64(11)).
			Return(&domain.Ingredient{ID: 11, Name: "Queijo", PackagePrice: 40, PackageQuantity: 2}, nil)
		mockRecipeRepo.EXPECT().ReplaceForProduct(gomock.Any(), int64(1), gomock.Any()).Return(nil)

		// 0.5kg de farinha (2.00) + 0.2kg de queijo (4.00) = 6.00
		mockProductRepo.EXPECT().UpdateProductCMV(int64(1), 6.0).Return(nil)

		items := []*domain.RecipeItem{
			{IngredientID: 10, Quantity: 0.5},
			{IngredientID: 11, Quantity: 0.2},
		}

		cmv, err := service.SaveRecipe(context.Background(), 1, items)
		require.NoError(t, err)
		assert.Equal(t, 6.0, cmv)
	})

	t.Run("ficha técnica vazia zera o CMV", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(1)).Return(product, nil)
		mockRecipeRepo.EXPECT().ReplaceForProduct(gomock.Any(), int64(1), gomock.Any()).Return(nil)
		mockProductRepo.EXPECT().UpdateProductCMV(int64(1), 0.0).Return(nil)

		cmv, err := service.SaveRecipe(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Zero(t, cmv)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(99)).Return(nil, nil)

		_, err := service.SaveRecipe(context.Background(), 99, nil)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("insumo inexistente", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(1)).Return(product, nil)
		mockIngredientRepo.EXPECT().GetIngredientByID(int64(77)).Return(nil, nil)

		_, err := service.SaveRecipe(context.Background(), 1, []*domain.RecipeItem{{IngredientID: 77, Quantity: 1}})
		assert.ErrorIs(t, err, ErrIngredientNotFound)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo, nil, nil)

	t.Run("aplica apenas os campos enviados", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(1)).
			Return(&domain.Product{ID: 1, Name: "X-Tudo", Category: "Lanches", SalePrice: 30, Active: true}, nil)

		mockProductRepo.EXPECT().UpdateProduct(gomock.Any()).
			DoAndReturn(func(product *domain.Product) error {
				assert.Equal(t, "X-Tudo Especial", product.Name)
				assert.Equal(t, "Lanches", product.Category)
				assert.Equal(t, 35.0, product.SalePrice)
				return nil
			})

		name := "X-Tudo Especial"
		price := 35.0
		updated, err := service.UpdateProduct(&domain.UpdateProductRequest{ID: 1, Name: &name, SalePrice: &price})
		require.NoError(t, err)
		assert.Equal(t, "X-Tudo Especial", updated.Name)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(99)).Return(nil, nil)

		_, err := service.UpdateProduct(&domain.UpdateProductRequest{ID: 99})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestCreateIngredient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngredientRepo := mocks.NewMockIngredientRepository(ctrl)
	service := NewService(nil, mockIngredientRepo, nil)

	t.Run("valida a embalagem", func(t *testing.T) {
		_, err := service.CreateIngredient(&domain.Ingredient{Name: "Farinha", PackageQuantity: 0})
		assert.Error(t, err)
	})

	t.Run("cria o insumo", func(t *testing.T) {
		ingredient := &domain.Ingredient{Name: "Farinha", Unit: "kg", PackagePrice: 20, PackageQuantity: 5}
		mockIngredientRepo.EXPECT().CreateIngredient(ingredient).Return(ingredient, nil)

		created, err := service.CreateIngredient(ingredient)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, created.UnitCost(), 0.001)
	})
}
