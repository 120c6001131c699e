package insighting

import (
	"context"
	"testing"

	repomocks "github.com/precifica/cost-manager-api/infrastructure/repository/mocks"
	"github.com/precifica/cost-manager-api/internal/domain"
	pricingmocks "github.com/precifica/cost-manager-api/internal/usecases/pricing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// metricsFor calcula indicadores reais para manter os fixtures coerentes com
// o motor de precificação
func metricsFor(product *domain.Product) *domain.ProductMetrics {
	return domain.ComputeProductMetrics(domain.ProductMetricsInput{
		CMV:                     product.CMV,
		SalePrice:               product.SalePrice,
		FixedCostPercent:        10,
		VariableCostPercent:     12,
		DesiredProfitPercent:    15,
		AverageMonthlyRevenue:   50000,
		FixedCostAllocationMode: domain.AllocationRevenueBased,
		TargetCMVPercent:        35,
	})
}

func TestProductInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := repomocks.NewMockProductRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockInsightSnapshotRepository(ctrl)
	mockPricer := pricingmocks.NewMockPricer(ctrl)
	service := NewService(mockProductRepo, mockSnapshotRepo, mockPricer)

	t.Run("produto saudável não gera alertas", func(t *testing.T) {
		product := &domain.Product{ID: 1, Name: "X-Tudo", CMV: 9, SalePrice: 30}
		mockProductRepo.EXPECT().GetProductByID(int64(1)).Return(product, nil)
		mockPricer.EXPECT().MetricsFor(product).Return(metricsFor(product), nil)

		result, err := service.ProductInsights(1)
		require.NoError(t, err)
		assert.Empty(t, result.Insights)
		assert.Equal(t, product, result.Product)
	})

	t.Run("produto com CMV estourado gera alerta de perigo", func(t *testing.T) {
		product := &domain.Product{ID: 2, Name: "Açaí", CMV: 15, SalePrice: 22}
		mockProductRepo.EXPECT().GetProductByID(int64(2)).Return(product, nil)
		mockPricer.EXPECT().MetricsFor(product).Return(metricsFor(product), nil)

		result, err := service.ProductInsights(2)
		require.NoError(t, err)
		require.NotEmpty(t, result.Insights)
		assert.Equal(t, domain.InsightDanger, result.Insights[0].Level)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(99)).Return(nil, nil)

		_, err := service.ProductInsights(99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestSnapshotAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := repomocks.NewMockProductRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockInsightSnapshotRepository(ctrl)
	mockPricer := pricingmocks.NewMockPricer(ctrl)
	service := NewService(mockProductRepo, mockSnapshotRepo, mockPricer)

	healthy := &domain.Product{ID: 1, Name: "X-Tudo", CMV: 9, SalePrice: 30}
	unhealthy := &domain.Product{ID: 2, Name: "Açaí", CMV: 15, SalePrice: 22}

	t.Run("grava snapshot para produto com alerta e remove o do saudável", func(t *testing.T) {
		mockProductRepo.EXPECT().ListProducts().Return([]*domain.Product{healthy, unhealthy}, nil)
		mockPricer.EXPECT().MetricsFor(healthy).Return(metricsFor(healthy), nil)
		mockPricer.EXPECT().MetricsFor(unhealthy).Return(metricsFor(unhealthy), nil)

		mockSnapshotRepo.EXPECT().DeleteForProduct(int64(1)).Return(nil)
		mockSnapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(snapshot *domain.InsightSnapshot) error {
				assert.Equal(t, int64(2), snapshot.ProductID)
				assert.Equal(t, "Açaí", snapshot.ProductName)
				assert.Equal(t, domain.InsightDanger, snapshot.WorstLevel)
				assert.GreaterOrEqual(t, snapshot.DangerCount, 1)
				return nil
			})

		flagged, err := service.SnapshotAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, flagged)
	})

	t.Run("erro de cálculo em um produto não derruba o lote", func(t *testing.T) {
		mockProductRepo.EXPECT().ListProducts().Return([]*domain.Product{healthy, unhealthy}, nil)
		mockPricer.EXPECT().MetricsFor(healthy).Return(nil, assert.AnError)
		mockPricer.EXPECT().MetricsFor(unhealthy).Return(metricsFor(unhealthy), nil)
		mockSnapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		flagged, err := service.SnapshotAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, flagged)
	})
}

func TestActionCenter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := repomocks.NewMockProductRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockInsightSnapshotRepository(ctrl)
	mockPricer := pricingmocks.NewMockPricer(ctrl)
	service := NewService(mockProductRepo, mockSnapshotRepo, mockPricer)

	t.Run("retorna os snapshots existentes", func(t *testing.T) {
		snapshots := []*domain.InsightSnapshot{
			{ProductID: 2, ProductName: "Açaí", WorstLevel: domain.InsightDanger},
		}
		mockSnapshotRepo.EXPECT().ListWorstOffenders(uint64(10)).Return(snapshots, nil)

		result, err := service.ActionCenter(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, snapshots, result)
	})

	t.Run("sem snapshots calcula na hora", func(t *testing.T) {
		unhealthy := &domain.Product{ID: 2, Name: "Açaí", CMV: 15, SalePrice: 22}

		mockSnapshotRepo.EXPECT().ListWorstOffenders(uint64(10)).Return([]*domain.InsightSnapshot{}, nil)
		mockProductRepo.EXPECT().ListProducts().Return([]*domain.Product{unhealthy}, nil)
		mockPricer.EXPECT().MetricsFor(unhealthy).Return(metricsFor(unhealthy), nil)
		mockSnapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
		mockSnapshotRepo.EXPECT().ListWorstOffenders(uint64(10)).Return([]*domain.InsightSnapshot{
			{ProductID: 2, ProductName: "Açaí", WorstLevel: domain.InsightDanger},
		}, nil)

		result, err := service.ActionCenter(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, result, 1)
	})
}
