package pricing

import (
	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/infrastructure/repository"
	"github.com/precifica/cost-manager-api/internal/domain"
)

var ErrProductNotFound = errors.New("produto não encontrado")

// Pricer calcula os indicadores de precificação de um produto combinando o
// cadastro do produto, a configuração do negócio e os canais de venda.
type Pricer interface {
	ProductMetrics(productID int64) (*domain.ProductMetrics, error)
	MetricsFor(product *domain.Product) (*domain.ProductMetrics, error)
	Simulate(input domain.ProductMetricsInput) *domain.ProductMetrics
}

type Service struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	channelRepo  repository.ChannelRepository
}

func NewService(
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	channelRepo repository.ChannelRepository,
) Pricer {
	return &Service{
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		channelRepo:  channelRepo,
	}
}

// ProductMetrics calcula os indicadores do produto identificado por productID
func (s *Service) ProductMetrics(productID int64) (*domain.ProductMetrics, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar produto")
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return s.MetricsFor(product)
}

// MetricsFor calcula os indicadores de um produto já carregado. Negócio sem
// configuração usa os padrões; falha ao listar canais não derruba o cálculo,
// só deixa a lista de preços por canal vazia.
func (s *Service) MetricsFor(product *domain.Product) (*domain.ProductMetrics, error) {
	settings, err := s.settingsRepo.GetSettings()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar configurações do negócio")
	}
	if settings == nil {
		settings = domain.DefaultBusinessSettings()
	}

	channels, err := s.channelRepo.ListChannels()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar canais de venda")
	}

	metrics := domain.ComputeProductMetrics(settings.MetricsInput(product, channels))
	return metrics, nil
}

// Simulate calcula indicadores para uma entrada arbitrária, sem tocar no
// banco. Usado pelo simulador de preços do front.
func (s *Service) Simulate(input domain.ProductMetricsInput) *domain.ProductMetrics {
	return domain.ComputeProductMetrics(input)
}
