package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/precifica/cost-manager-api/infrastructure/database/postgres"
	"github.com/precifica/cost-manager-api/internal/domain"
)

type InsightSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.InsightSnapshot) error
	ListWorstOffenders(limit uint64) ([]*domain.InsightSnapshot, error)
	DeleteForProduct(productID int64) error
}

type insightSnapshotRepository struct {
	conn *postgres.Connection
}

func NewInsightSnapshotRepository(conn *postgres.Connection) InsightSnapshotRepository {
	return &insightSnapshotRepository{
		conn: conn,
	}
}

func (r *insightSnapshotRepository) SaveOrUpdate(snapshot *domain.InsightSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("insight_snapshots").
		Columns("product_id", "product_name", "worst_level", "danger_count", "warning_count", "info_count", "computed_at").
		Values(
			snapshot.ProductID,
			snapshot.ProductName,
			string(snapshot.WorstLevel),
			snapshot.DangerCount,
			snapshot.WarningCount,
			snapshot.InfoCount,
			snapshot.ComputedAt,
		).
		Suffix(`
			ON CONFLICT (product_id) DO UPDATE SET
				product_name = EXCLUDED.product_name,
				worst_level = EXCLUDED.worst_level,
				danger_count = EXCLUDED.danger_count,
				warning_count = EXCLUDED.warning_count,
				info_count = EXCLUDED.info_count,
				computed_at = EXCLUDED.computed_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar snapshot de alertas: %w", err)
	}

	return nil
}

// ListWorstOffenders retorna os snapshots ordenados do mais grave para o menos
// grave, para alimentar a central de ações
func (r *insightSnapshotRepository) ListWorstOffenders(limit uint64) ([]*domain.InsightSnapshot, error) {
	builder := squirrel.
		Select("isn.id, isn.product_id, isn.product_name, isn.worst_level, isn.danger_count, isn.warning_count, isn.info_count, isn.computed_at").
		From("insight_snapshots isn").
		Where(squirrel.NotEq{"isn.worst_level": ""}).
		OrderBy(`CASE isn.worst_level
			WHEN 'danger' THEN 0
			WHEN 'warning' THEN 1
			ELSE 2
		END, isn.danger_count DESC, isn.warning_count DESC`).
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.InsightSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.InsightSnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.ProductID,
			&snapshot.ProductName,
			&snapshot.WorstLevel,
			&snapshot.DangerCount,
			&snapshot.WarningCount,
			&snapshot.InfoCount,
			&snapshot.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot de alertas: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *insightSnapshotRepository) DeleteForProduct(productID int64) error {
	query, args, err := squirrel.
		Delete("insight_snapshots").
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover snapshot de alertas: %w", err)
	}

	return nil
}
