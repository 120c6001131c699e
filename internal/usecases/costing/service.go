package costing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/infrastructure/repository"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/pkg/log"
)

var (
	ErrCostNotFound    = errors.New("lançamento de custo não encontrado")
	ErrChannelNotFound = errors.New("canal de venda não encontrado")
)

// Coster mantém a estrutura de custos do negócio: custos fixos, custos
// variáveis, canais de venda e a configuração consolidada usada pelo motor
// de precificação. Toda mutação de custo ressincroniza os totais gravados
// na configuração.
type Coster interface {
	ListFixedCosts() ([]*domain.FixedCost, error)
	CreateFixedCost(ctx context.Context, cost *domain.FixedCost) (*domain.FixedCost, error)
	UpdateFixedCost(ctx context.Context, cost *domain.FixedCost) error
	DeleteFixedCost(ctx context.Context, id int64) error

	ListVariableCosts() ([]*domain.VariableCost, error)
	CreateVariableCost(ctx context.Context, cost *domain.VariableCost) (*domain.VariableCost, error)
	UpdateVariableCost(ctx context.Context, cost *domain.VariableCost) error
	DeleteVariableCost(ctx context.Context, id int64) error

	ListChannels() ([]*domain.SalesChannel, error)
	CreateChannel(channel *domain.SalesChannel) (*domain.SalesChannel, error)
	UpdateChannel(channel *domain.SalesChannel) error
	DeleteChannel(id int64) error

	GetSettings() (*domain.BusinessSettings, error)
	SaveSettings(settings *domain.BusinessSettings) error
}

type Service struct {
	costRepo     repository.CostRepository
	channelRepo  repository.ChannelRepository
	settingsRepo repository.SettingsRepository
}

func NewService(
	costRepo repository.CostRepository,
	channelRepo repository.ChannelRepository,
	settingsRepo repository.SettingsRepository,
) Coster {
	return &Service{
		costRepo:     costRepo,
		channelRepo:  channelRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *Service) ListFixedCosts() ([]*domain.FixedCost, error) {
	return s.costRepo.ListFixedCosts()
}

func (s *Service) CreateFixedCost(ctx context.Context, cost *domain.FixedCost) (*domain.FixedCost, error) {
	if cost.Name == "" {
		return nil, errors.New("nome do custo é obrigatório")
	}

	created, err := s.costRepo.CreateFixedCost(cost)
	if err != nil {
		return nil, err
	}

	return created, s.syncTotals(ctx)
}

func (s *Service) UpdateFixedCost(ctx context.Context, cost *domain.FixedCost) error {
	if err := s.costRepo.UpdateFixedCost(cost); err != nil {
		return err
	}

	return s.syncTotals(ctx)
}

func (s *Service) DeleteFixedCost(ctx context.Context, id int64) error {
	rows, err := s.costRepo.DeleteFixedCost(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCostNotFound
	}

	return s.syncTotals(ctx)
}

func (s *Service) ListVariableCosts() ([]*domain.VariableCost, error) {
	return s.costRepo.ListVariableCosts()
}

func (s *Service) CreateVariableCost(ctx context.Context, cost *domain.VariableCost) (*domain.VariableCost, error) {
	if cost.Name == "" {
		return nil, errors.New("nome do custo é obrigatório")
	}

	created, err := s.costRepo.CreateVariableCost(cost)
	if err != nil {
		return nil, err
	}

	return created, s.syncTotals(ctx)
}

func (s *Service) UpdateVariableCost(ctx context.Context, cost *domain.VariableCost) error {
	if err := s.costRepo.UpdateVariableCost(cost); err != nil {
		return err
	}

	return s.syncTotals(ctx)
}

func (s *Service) DeleteVariableCost(ctx context.Context, id int64) error {
	rows, err := s.costRepo.DeleteVariableCost(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCostNotFound
	}

	return s.syncTotals(ctx)
}

func (s *Service) ListChannels() ([]*domain.SalesChannel, error) {
	return s.channelRepo.ListChannels()
}

func (s *Service) CreateChannel(channel *domain.SalesChannel) (*domain.SalesChannel, error) {
	if channel.Name == "" {
		return nil, errors.New("nome do canal é obrigatório")
	}

	return s.channelRepo.CreateChannel(channel)
}

func (s *Service) UpdateChannel(channel *domain.SalesChannel) error {
	existing, err := s.channelRepo.GetChannelByID(channel.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrChannelNotFound
	}

	return s.channelRepo.UpdateChannel(channel)
}

func (s *Service) DeleteChannel(id int64) error {
	rows, err := s.channelRepo.DeleteChannel(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrChannelNotFound
	}

	return nil
}

func (s *Service) GetSettings() (*domain.BusinessSettings, error) {
	settings, err := s.settingsRepo.GetSettings()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return domain.DefaultBusinessSettings(), nil
	}

	return settings, nil
}

func (s *Service) SaveSettings(settings *domain.BusinessSettings) error {
	if settings.FixedCostAllocationMode == "" {
		settings.FixedCostAllocationMode = domain.AllocationRevenueBased
	}

	return s.settingsRepo.SaveSettings(settings)
}

// syncTotals recalcula os totais do razão de custos e os grava na
// configuração do negócio, para o motor de precificação enxergar a
// mudança sem reconfiguração manual
func (s *Service) syncTotals(ctx context.Context) error {
	settings, err := s.settingsRepo.GetSettings()
	if err != nil {
		return errors.Wrap(err, "erro ao consultar configurações do negócio")
	}
	if settings == nil {
		settings = domain.DefaultBusinessSettings()
	}

	totalFixed, err := s.costRepo.TotalFixedCosts()
	if err != nil {
		return errors.Wrap(err, "erro ao somar custos fixos")
	}

	totalVariable, err := s.costRepo.TotalVariableCostPercent()
	if err != nil {
		return errors.Wrap(err, "erro ao somar custos variáveis")
	}

	settings.TotalFixedCosts = totalFixed
	settings.VariableCostPercent = totalVariable
	if settings.AverageMonthlyRevenue > 0 {
		settings.FixedCostPercent = totalFixed / settings.AverageMonthlyRevenue * 100
	}

	if err := s.settingsRepo.SaveSettings(settings); err != nil {
		return errors.Wrap(err, "erro ao gravar configurações do negócio")
	}

	log.FromContext(ctx).WithFields(log.Fields{
		"total_custos_fixos":          totalFixed,
		"percentual_custos_variaveis": totalVariable,
	}).Info("totais da estrutura de custos ressincronizados")

	return nil
}
