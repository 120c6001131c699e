package insighting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/infrastructure/repository"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/internal/usecases/pricing"
	"github.com/precifica/cost-manager-api/pkg/log"
)

var ErrProductNotFound = errors.New("produto não encontrado")

// ProductInsightsResult agrega produto, indicadores e alertas para a tela de
// detalhe do produto
type ProductInsightsResult struct {
	Product  *domain.Product        `json:"product"`
	Metrics  *domain.ProductMetrics `json:"metrics"`
	Insights []*domain.Insight      `json:"insights"`
}

type Insighter interface {
	ProductInsights(productID int64) (*ProductInsightsResult, error)
	ActionCenter(ctx context.Context, limit uint64) ([]*domain.InsightSnapshot, error)
	SnapshotAll(ctx context.Context) (int, error)
}

type Service struct {
	productRepo  repository.ProductRepository
	snapshotRepo repository.InsightSnapshotRepository
	pricer       pricing.Pricer
}

func NewService(
	productRepo repository.ProductRepository,
	snapshotRepo repository.InsightSnapshotRepository,
	pricer pricing.Pricer,
) Insighter {
	return &Service{
		productRepo:  productRepo,
		snapshotRepo: snapshotRepo,
		pricer:       pricer,
	}
}

// ProductInsights calcula os indicadores e classifica os alertas de um produto
// em tempo real
func (s *Service) ProductInsights(productID int64) (*ProductInsightsResult, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar produto")
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	metrics, err := s.pricer.MetricsFor(product)
	if err != nil {
		return nil, err
	}

	return &ProductInsightsResult{
		Product:  product,
		Metrics:  metrics,
		Insights: domain.BuildInsights(product, metrics),
	}, nil
}

// ActionCenter retorna os produtos com alertas, do mais grave para o menos
// grave. Quando ainda não há snapshot (primeiro acesso ou base recém-criada),
// calcula na hora antes de responder.
func (s *Service) ActionCenter(ctx context.Context, limit uint64) ([]*domain.InsightSnapshot, error) {
	snapshots, err := s.snapshotRepo.ListWorstOffenders(limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar snapshots de alertas")
	}

	if len(snapshots) > 0 {
		return snapshots, nil
	}

	if _, err := s.SnapshotAll(ctx); err != nil {
		return nil, err
	}

	snapshots, err = s.snapshotRepo.ListWorstOffenders(limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar snapshots de alertas")
	}

	return snapshots, nil
}

// SnapshotAll recalcula os alertas de todos os produtos ativos e grava um
// snapshot por produto. Produto sem alerta tem o snapshot removido. Retorna
// quantos produtos ficaram com alerta.
func (s *Service) SnapshotAll(ctx context.Context) (int, error) {
	products, err := s.productRepo.ListProducts()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao listar produtos")
	}

	logger := log.FromContext(ctx)
	now := time.Now()
	flagged := 0

	for _, product := range products {
		metrics, err := s.pricer.MetricsFor(product)
		if err != nil {
			logger.WithError(err).WithField("product_id", product.ID).
				Warn("erro ao calcular indicadores do produto, snapshot ignorado")
			continue
		}

		insights := domain.BuildInsights(product, metrics)
		worst, ok := domain.WorstInsightLevel(insights)
		if !ok {
			if err := s.snapshotRepo.DeleteForProduct(product.ID); err != nil {
				logger.WithError(err).WithField("product_id", product.ID).
					Warn("erro ao remover snapshot de produto saudável")
			}
			continue
		}

		danger, warning, info := domain.CountInsightLevels(insights)
		snapshot := &domain.InsightSnapshot{
			ProductID:    product.ID,
			ProductName:  product.Name,
			WorstLevel:   worst,
			DangerCount:  danger,
			WarningCount: warning,
			InfoCount:    info,
			ComputedAt:   now,
		}

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logger.WithError(err).WithField("product_id", product.ID).
				Warn("erro ao gravar snapshot de alertas")
			continue
		}

		flagged++
	}

	logger.WithFields(log.Fields{
		"produtos":     len(products),
		"com_alertas":  flagged,
		"calculado_em": now.Format(time.RFC3339),
	}).Info("snapshot de alertas concluído")

	return flagged, nil
}
