package pricing

import (
	"testing"

	"github.com/precifica/cost-manager-api/infrastructure/repository/mocks"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSettingsRepository(ctrl)
	mockChannelRepo := mocks.NewMockChannelRepository(ctrl)
	service := NewService(mockProductRepo, mockSettingsRepo, mockChannelRepo)

	settings := &domain.BusinessSettings{
		FixedCostPercent:        10,
		VariableCostPercent:     12,
		DesiredProfitPercent:    15,
		TotalFixedCosts:         5000,
		EstimatedMonthlySales:   1000,
		AverageMonthlyRevenue:   50000,
		FixedCostAllocationMode: domain.AllocationRevenueBased,
		TargetCMVPercent:        35,
	}

	product := &domain.Product{ID: 7, Name: "X-Tudo", CMV: 10, SalePrice: 30}

	t.Run("calcula os indicadores do produto com canais", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(7)).Return(product, nil)
		mockSettingsRepo.EXPECT().GetSettings().Return(settings, nil)
		mockChannelRepo.EXPECT().ListChannels().Return([]*domain.SalesChannel{
			{ID: 1, Name: "iFood", TotalTaxRate: 12},
		}, nil)

		metrics, err := service.ProductMetrics(7)
		require.NoError(t, err)

		assert.InDelta(t, 1.5873, metrics.Markup, 0.001)
		assert.True(t, metrics.PricingFeasible)
		assert.InDelta(t, 15.87, metrics.IdealMenuPrice, 0.01)
		require.Len(t, metrics.ChannelPrices, 1)
		assert.InDelta(t, 18.04, metrics.ChannelPrices[0].IdealPrice, 0.01)
		assert.Equal(t, domain.StatusHealthy, metrics.CMVStatus)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(99)).Return(nil, nil)

		_, err := service.ProductMetrics(99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("negócio sem configuração usa os padrões", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(7)).Return(product, nil)
		mockSettingsRepo.EXPECT().GetSettings().Return(nil, nil)
		mockChannelRepo.EXPECT().ListChannels().Return([]*domain.SalesChannel{}, nil)

		metrics, err := service.ProductMetrics(7)
		require.NoError(t, err)

		// Sem custos configurados o markup é 1 e a meta de CMV é a padrão
		assert.InDelta(t, 1.0, metrics.Markup, 0.001)
		assert.Empty(t, metrics.ChannelPrices)
	})

	t.Run("falha ao consultar configurações", func(t *testing.T) {
		mockProductRepo.EXPECT().GetProductByID(int64(7)).Return(product, nil)
		mockSettingsRepo.EXPECT().GetSettings().Return(nil, assert.AnError)

		_, err := service.ProductMetrics(7)
		assert.Error(t, err)
	})
}

func TestSimulate(t *testing.T) {
	service := NewService(nil, nil, nil)

	metrics := service.Simulate(domain.ProductMetricsInput{
		CMV:                     10,
		SalePrice:               30,
		FixedCostPercent:        10,
		VariableCostPercent:     12,
		DesiredProfitPercent:    15,
		AverageMonthlyRevenue:   50000,
		FixedCostAllocationMode: domain.AllocationRevenueBased,
		TargetCMVPercent:        35,
	})

	assert.InDelta(t, 33.33, metrics.CMVPercent, 0.01)
	assert.InDelta(t, 44.67, metrics.ProfitPercent, 0.01)
}
