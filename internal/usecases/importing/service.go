package importing

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/infrastructure/repository"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/pkg/log"
	"github.com/precifica/cost-manager-api/pkg/utils"
)

var (
	ErrEmptyImport     = errors.New("nenhuma linha aproveitável no texto colado")
	ErrNothingSelected = errors.New("nenhum item selecionado para importação")
	ErrBatchNotFound   = errors.New("lote de importação não encontrado")
)

// TxRunner abre uma transação e executa fn dentro dela. Satisfeito pela
// conexão Postgres; falsificável nos testes.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// CommitResult resume o que a confirmação de um lote gravou
type CommitResult struct {
	BatchID         string `json:"batch_id"`
	SalesCreated    int    `json:"sales_created"`
	ProductsCreated int    `json:"products_created"`
}

type Importer interface {
	Preview(ctx context.Context, text string) ([]*ParsedItem, error)
	Commit(ctx context.Context, items []*ParsedItem, soldAt time.Time) (*CommitResult, error)
	UndoBatch(ctx context.Context, batchID string) (int64, error)
}

type importer struct {
	locale      Locale
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	txRunner    TxRunner
}

func NewImporter(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	txRunner TxRunner,
) Importer {
	return &importer{
		locale:      PTBR(),
		productRepo: productRepo,
		saleRepo:    saleRepo,
		txRunner:    txRunner,
	}
}

// Preview faz o parsing do texto colado contra o catálogo atual sem gravar
// nada. A lista volta na ordem do texto, com itens casados e não encontrados.
func (i *importer) Preview(ctx context.Context, text string) ([]*ParsedItem, error) {
	products, err := i.productRepo.ListProducts()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar o catálogo de produtos")
	}

	items := NewParser(i.locale, products).Parse(text)
	if len(items) == 0 {
		return nil, ErrEmptyImport
	}

	if log.IsDevelopment() {
		log.FromContext(ctx).Debugf("prévia de importação interpretada: %s", utils.PrettyJson(items))
	}

	return items, nil
}

// Commit grava os itens selecionados como vendas de um novo lote. Itens não
// encontrados no catálogo viram produtos novos na mesma transação; o lote
// inteiro entra ou nada entra.
func (i *importer) Commit(ctx context.Context, items []*ParsedItem, soldAt time.Time) (*CommitResult, error) {
	selected := make([]*ParsedItem, 0, len(items))
	for _, item := range items {
		if item != nil && item.Selected && item.Quantity > 0 {
			selected = append(selected, item)
		}
	}

	if len(selected) == 0 {
		return nil, ErrNothingSelected
	}

	batchID, err := utils.GenerateBatchID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o identificador do lote")
	}

	result := &CommitResult{BatchID: batchID}

	err = i.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		sales := make([]*domain.Sale, 0, len(selected))

		for _, item := range selected {
			productID := item.ProductID

			if item.Status == StatusNotFound {
				created, err := i.productRepo.CreateProductTx(tx, &domain.Product{
					Name:      item.RawName,
					Category:  item.Category,
					SalePrice: item.AvgPrice,
				})
				if err != nil {
					return err
				}
				productID = created
				result.ProductsCreated++
			}

			sales = append(sales, &domain.Sale{
				ProductID: productID,
				Quantity:  item.Quantity,
				SalePrice: item.AvgPrice,
				SoldAt:    soldAt,
				BatchID:   batchID,
			})
		}

		if err := i.saleRepo.InsertBatchTx(tx, sales); err != nil {
			return err
		}

		result.SalesCreated = len(sales)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao confirmar o lote de importação")
	}

	log.FromContext(ctx).WithFields(log.Fields{
		"batch_id":         result.BatchID,
		"vendas":           result.SalesCreated,
		"produtos_criados": result.ProductsCreated,
	}).Info("lote de importação confirmado")

	return result, nil
}

// UndoBatch remove todas as vendas de um lote já confirmado e retorna quantas
// linhas foram removidas
func (i *importer) UndoBatch(ctx context.Context, batchID string) (int64, error) {
	removed, err := i.saleRepo.DeleteBatch(batchID)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao desfazer o lote de importação")
	}

	if removed == 0 {
		return 0, ErrBatchNotFound
	}

	log.FromContext(ctx).WithFields(log.Fields{
		"batch_id": batchID,
		"vendas":   removed,
	}).Info("lote de importação desfeito")

	return removed, nil
}
