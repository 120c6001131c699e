package costing

import (
	"context"
	"testing"

	"github.com/precifica/cost-manager-api/infrastructure/repository/mocks"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateFixedCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	costRepo := mocks.NewMockCostRepository(ctrl)
	channelRepo := mocks.NewMockChannelRepository(ctrl)
	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	service := NewService(costRepo, channelRepo, settingsRepo)

	t.Run("cria o custo e ressincroniza os totais da configuração", func(t *testing.T) {
		cost := &domain.FixedCost{Name: "Aluguel", MonthlyAmount: 3000}

		costRepo.EXPECT().CreateFixedCost(cost).Return(cost, nil)
		settingsRepo.EXPECT().GetSettings().Return(&domain.BusinessSettings{
			AverageMonthlyRevenue:   50000,
			FixedCostAllocationMode: domain.AllocationRevenueBased,
		}, nil)
		costRepo.EXPECT().TotalFixedCosts().Return(5000.0, nil)
		costRepo.EXPECT().TotalVariableCostPercent().Return(12.0, nil)
		settingsRepo.EXPECT().SaveSettings(gomock.Any()).DoAndReturn(func(settings *domain.BusinessSettings) error {
			assert.Equal(t, 5000.0, settings.TotalFixedCosts)
			assert.Equal(t, 12.0, settings.VariableCostPercent)
			assert.InDelta(t, 10.0, settings.FixedCostPercent, 0.001)
			return nil
		})

		created, err := service.CreateFixedCost(context.Background(), cost)
		assert.NoError(t, err)
		assert.Equal(t, "Aluguel", created.Name)
	})

	t.Run("rejeita custo sem nome", func(t *testing.T) {
		created, err := service.CreateFixedCost(context.Background(), &domain.FixedCost{MonthlyAmount: 100})
		assert.Error(t, err)
		assert.Nil(t, created)
	})

	t.Run("negócio sem configuração usa os padrões ao sincronizar", func(t *testing.T) {
		cost := &domain.FixedCost{Name: "Contador", MonthlyAmount: 800}

		costRepo.EXPECT().CreateFixedCost(cost).Return(cost, nil)
		settingsRepo.EXPECT().GetSettings().Return(nil, nil)
		costRepo.EXPECT().TotalFixedCosts().Return(800.0, nil)
		costRepo.EXPECT().TotalVariableCostPercent().Return(0.0, nil)
		settingsRepo.EXPECT().SaveSettings(gomock.Any()).DoAndReturn(func(settings *domain.BusinessSettings) error {
			assert.Equal(t, 800.0, settings.TotalFixedCosts)
			// Sem faturamento médio configurado, o percentual de custo fixo não é derivado
			assert.Equal(t, 0.0, settings.FixedCostPercent)
			assert.Equal(t, domain.AllocationRevenueBased, settings.FixedCostAllocationMode)
			return nil
		})

		_, err := service.CreateFixedCost(context.Background(), cost)
		assert.NoError(t, err)
	})
}

func TestDeleteFixedCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	costRepo := mocks.NewMockCostRepository(ctrl)
	channelRepo := mocks.NewMockChannelRepository(ctrl)
	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	service := NewService(costRepo, channelRepo, settingsRepo)

	t.Run("retorna erro quando o lançamento não existe", func(t *testing.T) {
		costRepo.EXPECT().DeleteFixedCost(int64(99)).Return(int64(0), nil)

		err := service.DeleteFixedCost(context.Background(), 99)
		assert.ErrorIs(t, err, ErrCostNotFound)
	})

	t.Run("remove e ressincroniza os totais", func(t *testing.T) {
		costRepo.EXPECT().DeleteFixedCost(int64(1)).Return(int64(1), nil)
		settingsRepo.EXPECT().GetSettings().Return(&domain.BusinessSettings{}, nil)
		costRepo.EXPECT().TotalFixedCosts().Return(0.0, nil)
		costRepo.EXPECT().TotalVariableCostPercent().Return(0.0, nil)
		settingsRepo.EXPECT().SaveSettings(gomock.Any()).Return(nil)

		err := service.DeleteFixedCost(context.Background(), 1)
		assert.NoError(t, err)
	})
}

func TestChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	costRepo := mocks.NewMockCostRepository(ctrl)
	channelRepo := mocks.NewMockChannelRepository(ctrl)
	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	service := NewService(costRepo, channelRepo, settingsRepo)

	t.Run("atualização de canal inexistente retorna erro", func(t *testing.T) {
		channelRepo.EXPECT().GetChannelByID(int64(7)).Return(nil, nil)

		err := service.UpdateChannel(&domain.SalesChannel{ID: 7, Name: "iFood", TotalTaxRate: 27})
		assert.ErrorIs(t, err, ErrChannelNotFound)
	})

	t.Run("remoção de canal inexistente retorna erro", func(t *testing.T) {
		channelRepo.EXPECT().DeleteChannel(int64(7)).Return(int64(0), nil)

		err := service.DeleteChannel(7)
		assert.ErrorIs(t, err, ErrChannelNotFound)
	})

	t.Run("criação exige nome", func(t *testing.T) {
		created, err := service.CreateChannel(&domain.SalesChannel{TotalTaxRate: 12})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestGetSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	costRepo := mocks.NewMockCostRepository(ctrl)
	channelRepo := mocks.NewMockChannelRepository(ctrl)
	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	service := NewService(costRepo, channelRepo, settingsRepo)

	t.Run("negócio nunca configurado recebe os padrões", func(t *testing.T) {
		settingsRepo.EXPECT().GetSettings().Return(nil, nil)

		settings, err := service.GetSettings()
		assert.NoError(t, err)
		assert.Equal(t, domain.AllocationRevenueBased, settings.FixedCostAllocationMode)
		assert.Equal(t, domain.DefaultTargetCMVPercent, settings.TargetCMVPercent)
	})

	t.Run("configuração existente é retornada como está", func(t *testing.T) {
		settingsRepo.EXPECT().GetSettings().Return(&domain.BusinessSettings{TargetCMVPercent: 30}, nil)

		settings, err := service.GetSettings()
		assert.NoError(t, err)
		assert.Equal(t, 30.0, settings.TargetCMVPercent)
	})
}
