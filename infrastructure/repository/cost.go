package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/precifica/cost-manager-api/infrastructure/database/postgres"
	"github.com/precifica/cost-manager-api/internal/domain"
)

type CostRepository interface {
	ListFixedCosts() ([]*domain.FixedCost, error)
	CreateFixedCost(cost *domain.FixedCost) (*domain.FixedCost, error)
	UpdateFixedCost(cost *domain.FixedCost) error
	DeleteFixedCost(id int64) (int64, error)
	TotalFixedCosts() (float64, error)

	ListVariableCosts() ([]*domain.VariableCost, error)
	CreateVariableCost(cost *domain.VariableCost) (*domain.VariableCost, error)
	UpdateVariableCost(cost *domain.VariableCost) error
	DeleteVariableCost(id int64) (int64, error)
	TotalVariableCostPercent() (float64, error)
}

type costRepository struct {
	conn *postgres.Connection
}

func NewCostRepository(conn *postgres.Connection) CostRepository {
	return &costRepository{
		conn: conn,
	}
}

func (r *costRepository) ListFixedCosts() ([]*domain.FixedCost, error) {
	query, args, err := squirrel.
		Select("fc.id, fc.name, fc.monthly_amount, fc.created_at, fc.updated_at").
		From("fixed_costs fc").
		OrderBy("fc.name ASC").
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

	costs := make([]*domain.FixedCost, 0)
	for rows.Next() {
		cost := &domain.FixedCost{}
		if err := rows.Scan(&cost.ID, &cost.Name, &cost.MonthlyAmount, &cost.CreatedAt, &cost.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear custo fixo: %w", err)
		}
		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}

func (r *costRepository) CreateFixedCost(cost *domain.FixedCost) (*domain.FixedCost, error) {
	query, args, err := squirrel.
		Insert("fixed_costs").
		Columns("name", "monthly_amount").
		Values(cost.Name, cost.MonthlyAmount).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&cost.ID, &cost.CreatedAt, &cost.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir custo fixo: %w", err)
	}

	return cost, nil
}

func (r *costRepository) UpdateFixedCost(cost *domain.FixedCost) error {
	query, args, err := squirrel.
		Update("fixed_costs").
		Set("name", cost.Name).
		Set("monthly_amount", cost.MonthlyAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cost.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar custo fixo: %w", err)
	}

	return nil
}

func (r *costRepository) DeleteFixedCost(id int64) (int64, error) {
	query, args, err := squirrel.
		Delete("fixed_costs").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover custo fixo: %w", err)
	}

	return result.RowsAffected()
}

// TotalFixedCosts soma todos os lançamentos de custo fixo do mês
func (r *costRepository) TotalFixedCosts() (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(monthly_amount), 0)").
		From("fixed_costs").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar custos fixos: %w", err)
	}

	return total, nil
}

func (r *costRepository) ListVariableCosts() ([]*domain.VariableCost, error) {
	query, args, err := squirrel.
		Select("vc.id, vc.name, vc.percent, vc.created_at, vc.updated_at").
		From("variable_costs vc").
		OrderBy("vc.name ASC").
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

	costs := make([]*domain.VariableCost, 0)
	for rows.Next() {
		cost := &domain.VariableCost{}
		if err := rows.Scan(&cost.ID, &cost.Name, &cost.Percent, &cost.CreatedAt, &cost.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear custo variável: %w", err)
		}
		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}

func (r *costRepository) CreateVariableCost(cost *domain.VariableCost) (*domain.VariableCost, error) {
	query, args, err := squirrel.
		Insert("variable_costs").
		Columns("name", "percent").
		Values(cost.Name, cost.Percent).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&cost.ID, &cost.CreatedAt, &cost.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir custo variável: %w", err)
	}

	return cost, nil
}

func (r *costRepository) UpdateVariableCost(cost *domain.VariableCost) error {
	query, args, err := squirrel.
		Update("variable_costs").
		Set("name", cost.Name).
		Set("percent", cost.Percent).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cost.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar custo variável: %w", err)
	}

	return nil
}

func (r *costRepository) DeleteVariableCost(id int64) (int64, error) {
	query, args, err := squirrel.
		Delete("variable_costs").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover custo variável: %w", err)
	}

	return result.RowsAffected()
}

// TotalVariableCostPercent soma os percentuais de todos os custos variáveis
func (r *costRepository) TotalVariableCostPercent() (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(percent), 0)").
		From("variable_costs").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar custos variáveis: %w", err)
	}

	return total, nil
}
