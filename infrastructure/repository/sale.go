package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/precifica/cost-manager-api/infrastructure/database/postgres"
	"github.com/precifica/cost-manager-api/internal/domain"
)

type SaleRepository interface {
	InsertBatchTx(tx *sql.Tx, sales []*domain.Sale) error
	DeleteBatch(batchID string) (int64, error)
	ListByPeriod(startDate, endDate time.Time) ([]*domain.Sale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// InsertBatchTx insere todas as vendas de um lote dentro da transação aberta
// pela confirmação de importação. O lote inteiro entra ou nada entra.
func (r *saleRepository) InsertBatchTx(tx *sql.Tx, sales []*domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	builder := squirrel.
		Insert("sales").
		Columns("product_id", "quantity", "sale_price", "sold_at", "batch_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, sale := range sales {
		builder = builder.Values(
			sale.ProductID,
			sale.Quantity,
			sale.SalePrice,
			sale.SoldAt.Format(time.DateOnly),
			sale.BatchID,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = tx.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir lote de vendas: %w", err)
	}

	return nil
}

// DeleteBatch remove todas as vendas de um lote de importação e retorna
// quantas linhas foram removidas
func (r *saleRepository) DeleteBatch(batchID string) (int64, error) {
	query, args, err := squirrel.
		Delete("sales").
		Where(squirrel.Eq{"batch_id": batchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover lote de vendas: %w", err)
	}

	return result.RowsAffected()
}

func (r *saleRepository) ListByPeriod(startDate, endDate time.Time) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.id, s.product_id, s.quantity, s.sale_price, s.sold_at, s.batch_id, s.created_at").
		From("sales s").
		Where(squirrel.GtOrEq{"s.sold_at": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"s.sold_at": endDate.Format(time.DateOnly)}).
		OrderBy("s.sold_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.ProductID,
			&sale.Quantity,
			&sale.SalePrice,
			&sale.SoldAt,
			&sale.BatchID,
			&sale.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}
