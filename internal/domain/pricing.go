package domain

import (
	"fmt"

	"github.com/precifica/cost-manager-api/pkg/utils"
)

// FixedCostAllocationMode define como o custo fixo mensal é rateado por unidade vendida
type FixedCostAllocationMode string

const (
	// AllocationRevenueBased rateia o custo fixo como percentual do preço de venda
	AllocationRevenueBased FixedCostAllocationMode = "revenue_based"
	// AllocationPerUnit divide o custo fixo total pelo volume mensal estimado
	AllocationPerUnit FixedCostAllocationMode = "per_unit"
)

// HealthStatus é a classificação de saúde usada para CMV e margem
type HealthStatus string

const (
	StatusHealthy HealthStatus = "healthy"
	StatusWarning HealthStatus = "warning"
	StatusDanger  HealthStatus = "danger"
)

// DefaultTargetCMVPercent é a meta de CMV usada quando o negócio não configurou uma
const DefaultTargetCMVPercent = 35.0

// Faixa de tolerância acima da meta de CMV antes de virar "danger"
const cmvWarningBandPercent = 5.0

// ChannelPrice é o preço ideal calculado para um canal de venda específico
type ChannelPrice struct {
	ChannelID    int64   `json:"channel_id"`
	ChannelName  string  `json:"channel_name"`
	TotalTaxRate float64 `json:"total_tax_rate"`
	IdealPrice   float64 `json:"ideal_price"`
}

// ProductMetricsInput reúne a estrutura de custos do negócio e os dados do produto.
// Percentuais são expressos de 0 a 100.
type ProductMetricsInput struct {
	CMV                     float64
	SalePrice               float64
	FixedCostPercent        float64
	VariableCostPercent     float64
	DesiredProfitPercent    float64
	TotalFixedCosts         float64
	EstimatedMonthlySales   float64
	AverageMonthlyRevenue   float64
	FixedCostAllocationMode FixedCostAllocationMode
	TargetCMVPercent        float64
	Channels                []*SalesChannel
}

// ProductMetrics é o retrato financeiro completo de um produto. Valor derivado,
// recalculado a cada chamada e nunca persistido.
type ProductMetrics struct {
	Markup          float64 `json:"markup"`
	PricingFeasible bool    `json:"pricing_feasible"`

	IdealMenuPrice float64         `json:"ideal_menu_price"`
	ChannelPrices  []*ChannelPrice `json:"channel_prices"`

	FixedCostValue       float64 `json:"fixed_cost_value"`
	FixedCostExplanation string  `json:"fixed_cost_explanation"`
	VariableCostValue    float64 `json:"variable_cost_value"`
	TotalUnitCost        float64 `json:"total_unit_cost"`

	CMVPercent                float64 `json:"cmv_percent"`
	GrossMarginPercent        float64 `json:"gross_margin_percent"`
	ContributionMarginPercent float64 `json:"contribution_margin_percent"`
	ProfitValue               float64 `json:"profit_value"`
	ProfitPercent             float64 `json:"profit_percent"`

	CMVStatus    HealthStatus `json:"cmv_status"`
	MarginStatus HealthStatus `json:"margin_status"`
}

// ComputeMarkup calcula o multiplicador de markup a partir dos três percentuais
// da estrutura de custos. Retorna 0 quando a soma atinge 100% — estrutura de
// custos inviável, não um markup literal de zero. Quem consome deve tratar 0
// como sentinela de "não é possível precificar".
func ComputeMarkup(fixedCostPercent, variableCostPercent, desiredProfitPercent float64) float64 {
	total := fixedCostPercent + variableCostPercent + desiredProfitPercent
	if total >= 100 {
		return 0
	}

	return 100 / (100 - total)
}

// ComputeIdealMenuPrice calcula o preço ideal de cardápio. Retorna 0 se o markup
// for o sentinela de inviabilidade ou se o CMV não fizer sentido.
func ComputeIdealMenuPrice(cmv, markup float64) float64 {
	if cmv <= 0 || markup <= 0 {
		return 0
	}

	return cmv * markup
}

// ComputeChannelPrice calcula o preço que o canal precisa cobrar para que,
// descontada a taxa do canal, o lojista receba o preço de cardápio.
func ComputeChannelPrice(menuPrice, channelTaxRate float64) float64 {
	if menuPrice <= 0 {
		return 0
	}

	if channelTaxRate <= 0 {
		return menuPrice
	}

	if channelTaxRate >= 100 {
		return 0
	}

	return menuPrice / (1 - channelTaxRate/100)
}

// ComputeAllChannelPrices mapeia cada canal para seu preço ideal, preservando a
// ordem da lista de entrada. Não deduplica nem valida IDs de canal.
func ComputeAllChannelPrices(menuPrice float64, channels []*SalesChannel) []*ChannelPrice {
	prices := make([]*ChannelPrice, 0, len(channels))
	for _, channel := range channels {
		prices = append(prices, &ChannelPrice{
			ChannelID:    channel.ID,
			ChannelName:  channel.Name,
			TotalTaxRate: channel.TotalTaxRate,
			IdealPrice:   utils.RoundWithTwoDecimalPlace(ComputeChannelPrice(menuPrice, channel.TotalTaxRate)),
		})
	}

	return prices
}

// ComputeProductMetrics é o ponto de entrada único que combina a estrutura de
// custos do negócio com o CMV e o preço de venda atual de um produto. Nunca
// retorna erro: toda divisão é protegida e valores inviáveis viram zeros
// sentinela que a camada de apresentação sinaliza.
func ComputeProductMetrics(input ProductMetricsInput) *ProductMetrics {
	markup := ComputeMarkup(input.FixedCostPercent, input.VariableCostPercent, input.DesiredProfitPercent)
	idealMenuPrice := ComputeIdealMenuPrice(input.CMV, markup)
	channelPrices := ComputeAllChannelPrices(idealMenuPrice, input.Channels)

	variableCost := input.SalePrice * (input.VariableCostPercent / 100)

	fixedCost, fixedCostExplanation := computeFixedCostPerUnit(input)

	totalUnitCost := input.CMV + variableCost + fixedCost

	var cmvPercent, grossMarginPercent, contributionMarginPercent, profitPercent float64
	profit := input.SalePrice - totalUnitCost

	if input.SalePrice > 0 {
		cmvPercent = input.CMV / input.SalePrice * 100
		grossMarginPercent = (input.SalePrice - input.CMV) / input.SalePrice * 100
		contributionMarginPercent = (input.SalePrice - input.CMV - variableCost) / input.SalePrice * 100
		profitPercent = profit / input.SalePrice * 100
	}

	return &ProductMetrics{
		Markup:          markup,
		PricingFeasible: markup > 0,

		IdealMenuPrice: utils.RoundWithTwoDecimalPlace(idealMenuPrice),
		ChannelPrices:  channelPrices,

		FixedCostValue:       utils.RoundWithTwoDecimalPlace(fixedCost),
		FixedCostExplanation: fixedCostExplanation,
		VariableCostValue:    utils.RoundWithTwoDecimalPlace(variableCost),
		TotalUnitCost:        utils.RoundWithTwoDecimalPlace(totalUnitCost),

		CMVPercent:                utils.RoundWithTwoDecimalPlace(cmvPercent),
		GrossMarginPercent:        utils.RoundWithTwoDecimalPlace(grossMarginPercent),
		ContributionMarginPercent: utils.RoundWithTwoDecimalPlace(contributionMarginPercent),
		ProfitValue:               utils.RoundWithTwoDecimalPlace(profit),
		ProfitPercent:             utils.RoundWithTwoDecimalPlace(profitPercent),

		CMVStatus:    classifyCMV(cmvPercent, input.TargetCMVPercent),
		MarginStatus: classifyMargin(profitPercent, input.DesiredProfitPercent),
	}
}

// computeFixedCostPerUnit aplica o modo de rateio configurado pelo negócio
func computeFixedCostPerUnit(input ProductMetricsInput) (float64, string) {
	if input.FixedCostAllocationMode == AllocationPerUnit {
		if input.EstimatedMonthlySales <= 0 {
			return 0, "Volume mensal estimado não configurado"
		}

		value := input.TotalFixedCosts / input.EstimatedMonthlySales
		explanation := fmt.Sprintf(
			"R$ %.2f de custos fixos divididos por %.0f unidades/mês",
			input.TotalFixedCosts,
			input.EstimatedMonthlySales,
		)
		return value, explanation
	}

	// revenue_based é o modo padrão
	value := input.SalePrice * (input.FixedCostPercent / 100)
	explanation := fmt.Sprintf(
		"%.2f%% do preço de venda (faturamento médio mensal de R$ %.2f)",
		input.FixedCostPercent,
		input.AverageMonthlyRevenue,
	)
	return value, explanation
}

// classifyCMV aplica a meta de CMV com faixa de tolerância. Empate exato na
// fronteira cai no nível menos severo.
func classifyCMV(cmvPercent, targetCMVPercent float64) HealthStatus {
	target := targetCMVPercent
	if target <= 0 {
		target = DefaultTargetCMVPercent
	}

	switch {
	case cmvPercent <= target:
		return StatusHealthy
	case cmvPercent <= target+cmvWarningBandPercent:
		return StatusWarning
	default:
		return StatusDanger
	}
}

func classifyMargin(profitPercent, desiredProfitPercent float64) HealthStatus {
	switch {
	case profitPercent < 0:
		return StatusDanger
	case profitPercent < desiredProfitPercent:
		return StatusWarning
	default:
		return StatusHealthy
	}
}
