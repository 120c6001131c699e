package importing

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/precifica/cost-manager-api/infrastructure/repository/mocks"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeTxRunner executa fn diretamente, sem banco. O tx nulo é suficiente
// porque os repositórios também estão mockados.
type fakeTxRunner struct {
	err error
}

func (f *fakeTxRunner) RunInTransaction(_ context.Context, fn func(tx *sql.Tx) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

func TestPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewImporter(mockProductRepo, mockSaleRepo, &fakeTxRunner{})

	t.Run("resolve os itens contra o catálogo atual", func(t *testing.T) {
		mockProductRepo.EXPECT().
			ListProducts().
			Return(catalogFixture(), nil)

		items, err := service.Preview(context.Background(),
			"Produto\tCategoria\tQtd\tTotal\tMédio\n"+
				"X-Tudo\tLanches\t65\tR$ 2.024,88\tR$ 30,68\n"+
				"Pastel de Carne\tSalgados\t20\tR$ 160,00\tR$ 8,00\n")

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, StatusMatched, items[0].Status)
		assert.Equal(t, StatusNotFound, items[1].Status)
	})

	t.Run("texto sem linhas aproveitáveis", func(t *testing.T) {
		mockProductRepo.EXPECT().
			ListProducts().
			Return(catalogFixture(), nil)

		_, err := service.Preview(context.Background(), "\n\n")
		assert.ErrorIs(t, err, ErrEmptyImport)
	})

	t.Run("falha ao carregar o catálogo", func(t *testing.T) {
		mockProductRepo.EXPECT().
			ListProducts().
			Return(nil, assert.AnError)

		_, err := service.Preview(context.Background(), "X-Tudo\tLanches\t5\tR$ 150,00\tR$ 30,00\n")
		assert.Error(t, err)
	})
}

func TestCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewImporter(mockProductRepo, mockSaleRepo, &fakeTxRunner{})

	soldAt := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	t.Run("grava vendas e cria produtos não encontrados no mesmo lote", func(t *testing.T) {
		items := []*ParsedItem{
			{RawName: "X-Tudo", Quantity: 65, AvgPrice: 30.68, Status: StatusMatched, ProductID: 1, Selected: true},
			{RawName: "Pastel de Carne", Category: "Salgados", Quantity: 20, AvgPrice: 8, Status: StatusNotFound, Selected: true},
			{RawName: "Refrigerante", Quantity: 10, AvgPrice: 8, Status: StatusMatched, ProductID: 2, Selected: false},
		}

		mockProductRepo.EXPECT().
			CreateProductTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, product *domain.Product) (int64, error) {
				assert.Equal(t, "Pastel de Carne", product.Name)
				assert.Equal(t, "Salgados", product.Category)
				assert.Equal(t, 8.0, product.SalePrice)
				return 42, nil
			})

		mockSaleRepo.EXPECT().
			InsertBatchTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, sales []*domain.Sale) error {
				require.Len(t, sales, 2)
				assert.Equal(t, int64(1), sales[0].ProductID)
				assert.Equal(t, int64(42), sales[1].ProductID)
				assert.Equal(t, soldAt, sales[0].SoldAt)
				assert.Equal(t, sales[0].BatchID, sales[1].BatchID)
				assert.NotEmpty(t, sales[0].BatchID)
				return nil
			})

		result, err := service.Commit(context.Background(), items, soldAt)
		require.NoError(t, err)
		assert.Equal(t, 2, result.SalesCreated)
		assert.Equal(t, 1, result.ProductsCreated)
		assert.NotEmpty(t, result.BatchID)
	})

	t.Run("nenhum item selecionado", func(t *testing.T) {
		items := []*ParsedItem{
			{RawName: "X-Tudo", Quantity: 5, Status: StatusMatched, ProductID: 1, Selected: false},
		}

		_, err := service.Commit(context.Background(), items, soldAt)
		assert.ErrorIs(t, err, ErrNothingSelected)
	})

	t.Run("falha na transação não devolve resultado", func(t *testing.T) {
		failing := NewImporter(mockProductRepo, mockSaleRepo, &fakeTxRunner{err: assert.AnError})

		items := []*ParsedItem{
			{RawName: "X-Tudo", Quantity: 5, AvgPrice: 30, Status: StatusMatched, ProductID: 1, Selected: true},
		}

		result, err := failing.Commit(context.Background(), items, soldAt)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestUndoBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewImporter(mockProductRepo, mockSaleRepo, &fakeTxRunner{})

	t.Run("remove as vendas do lote", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			DeleteBatch("abc123DEF456").
			Return(int64(7), nil)

		removed, err := service.UndoBatch(context.Background(), "abc123DEF456")
		require.NoError(t, err)
		assert.Equal(t, int64(7), removed)
	})

	t.Run("lote inexistente", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			DeleteBatch("naoexiste").
			Return(int64(0), nil)

		_, err := service.UndoBatch(context.Background(), "naoexiste")
		assert.ErrorIs(t, err, ErrBatchNotFound)
	})
}
