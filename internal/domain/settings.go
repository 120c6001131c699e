package domain

import "time"

// BusinessSettings é o retrato da estrutura de custos do negócio, tratado como
// snapshot de configuração somente-leitura pelas telas de precificação
type BusinessSettings struct {
	ID                      int64                   `json:"id"`
	FixedCostPercent        float64                 `json:"fixed_cost_percent"`
	VariableCostPercent     float64                 `json:"variable_cost_percent"`
	DesiredProfitPercent    float64                 `json:"desired_profit_percent"`
	TotalFixedCosts         float64                 `json:"total_fixed_costs"`
	EstimatedMonthlySales   float64                 `json:"estimated_monthly_sales"`
	AverageMonthlyRevenue   float64                 `json:"average_monthly_revenue"`
	FixedCostAllocationMode FixedCostAllocationMode `json:"fixed_cost_allocation_mode"`
	TargetCMVPercent        float64                 `json:"target_cmv_percent"`
	UpdatedAt               time.Time               `json:"updated_at"`
}

// DefaultBusinessSettings é usado enquanto o negócio ainda não configurou nada
func DefaultBusinessSettings() *BusinessSettings {
	return &BusinessSettings{
		FixedCostAllocationMode: AllocationRevenueBased,
		TargetCMVPercent:        DefaultTargetCMVPercent,
	}
}

// MetricsInput monta a entrada do motor de precificação para um produto
func (s *BusinessSettings) MetricsInput(product *Product, channels []*SalesChannel) ProductMetricsInput {
	return ProductMetricsInput{
		CMV:                     product.CMV,
		SalePrice:               product.SalePrice,
		FixedCostPercent:        s.FixedCostPercent,
		VariableCostPercent:     s.VariableCostPercent,
		DesiredProfitPercent:    s.DesiredProfitPercent,
		TotalFixedCosts:         s.TotalFixedCosts,
		EstimatedMonthlySales:   s.EstimatedMonthlySales,
		AverageMonthlyRevenue:   s.AverageMonthlyRevenue,
		FixedCostAllocationMode: s.FixedCostAllocationMode,
		TargetCMVPercent:        s.TargetCMVPercent,
		Channels:                channels,
	}
}
