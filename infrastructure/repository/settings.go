package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/precifica/cost-manager-api/infrastructure/database/postgres"
	"github.com/precifica/cost-manager-api/internal/domain"
)

type SettingsRepository interface {
	GetSettings() (*domain.BusinessSettings, error)
	SaveSettings(settings *domain.BusinessSettings) error
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// GetSettings retorna a configuração do negócio, ou nil quando ainda não
// houve configuração (o chamador aplica os padrões)
func (r *settingsRepository) GetSettings() (*domain.BusinessSettings, error) {
	query, args, err := squirrel.
		Select(`bs.id, bs.fixed_cost_percent, bs.variable_cost_percent, bs.desired_profit_percent,
			bs.total_fixed_costs, bs.estimated_monthly_sales, bs.average_monthly_revenue,
			bs.fixed_cost_allocation_mode, bs.target_cmv_percent, bs.updated_at`).
		From("business_settings bs").
		OrderBy("bs.id ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	settings := &domain.BusinessSettings{}
	err = r.conn.QueryRow(query, args...).Scan(
		&settings.ID,
		&settings.FixedCostPercent,
		&settings.VariableCostPercent,
		&settings.DesiredProfitPercent,
		&settings.TotalFixedCosts,
		&settings.EstimatedMonthlySales,
		&settings.AverageMonthlyRevenue,
		&settings.FixedCostAllocationMode,
		&settings.TargetCMVPercent,
		&settings.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configurações: %w", err)
	}

	return settings, nil
}

// SaveSettings grava a configuração única do negócio (upsert da linha 1)
func (r *settingsRepository) SaveSettings(settings *domain.BusinessSettings) error {
	query := squirrel.StatementBuilder.
		Insert("business_settings").
		Columns(
			"id",
			"fixed_cost_percent",
			"variable_cost_percent",
			"desired_profit_percent",
			"total_fixed_costs",
			"estimated_monthly_sales",
			"average_monthly_revenue",
			"fixed_cost_allocation_mode",
			"target_cmv_percent",
		).
		Values(
			1,
			settings.FixedCostPercent,
			settings.VariableCostPercent,
			settings.DesiredProfitPercent,
			settings.TotalFixedCosts,
			settings.EstimatedMonthlySales,
			settings.AverageMonthlyRevenue,
			settings.FixedCostAllocationMode,
			settings.TargetCMVPercent,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				fixed_cost_percent = EXCLUDED.fixed_cost_percent,
				variable_cost_percent = EXCLUDED.variable_cost_percent,
				desired_profit_percent = EXCLUDED.desired_profit_percent,
				total_fixed_costs = EXCLUDED.total_fixed_costs,
				estimated_monthly_sales = EXCLUDED.estimated_monthly_sales,
				average_monthly_revenue = EXCLUDED.average_monthly_revenue,
				fixed_cost_allocation_mode = EXCLUDED.fixed_cost_allocation_mode,
				target_cmv_percent = EXCLUDED.target_cmv_percent,
				updated_at = NOW()
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
		return fmt.Errorf("erro ao gravar configurações: %w", err)
	}

	return nil
}
