package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMarkup(t *testing.T) {
	tests := []struct {
		name     string
		fixed    float64
		variable float64
		profit   float64
		expected float64
	}{
		{
			name:     "estrutura de custos típica",
			fixed:    10,
			variable: 12,
			profit:   15,
			expected: 100.0 / 63.0,
		},
		{
			name:     "sem custos retorna markup 1",
			fixed:    0,
			variable: 0,
			profit:   0,
			expected: 1,
		},
		{
			name:     "soma exatamente 100 é inviável",
			fixed:    40,
			variable: 30,
			profit:   30,
			expected: 0,
		},
		{
			name:     "soma acima de 100 é inviável",
			fixed:    60,
			variable: 40,
			profit:   20,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMarkup(tt.fixed, tt.variable, tt.profit)
			assert.InDelta(t, tt.expected, got, 0.0001)
		})
	}
}

func TestComputeIdealMenuPrice(t *testing.T) {
	assert.InDelta(t, 27.03, ComputeIdealMenuPrice(10, 2.7027), 0.01)
	assert.Equal(t, 0.0, ComputeIdealMenuPrice(0, 2.5))
	assert.Equal(t, 0.0, ComputeIdealMenuPrice(-5, 2.5))
	assert.Equal(t, 0.0, ComputeIdealMenuPrice(10, 0), "sentinela de markup inviável não deve propagar")
	assert.Equal(t, 0.0, ComputeIdealMenuPrice(10, -1))
}

func TestComputeChannelPrice(t *testing.T) {
	t.Run("taxa zero devolve o próprio preço", func(t *testing.T) {
		assert.Equal(t, 30.0, ComputeChannelPrice(30, 0))
	})

	t.Run("taxa negativa não gera desconto", func(t *testing.T) {
		assert.Equal(t, 30.0, ComputeChannelPrice(30, -10))
	})

	t.Run("taxa de 100% é indefinida", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeChannelPrice(30, 100))
		assert.Equal(t, 0.0, ComputeChannelPrice(30, 120))
	})

	t.Run("preço não positivo retorna zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeChannelPrice(0, 12))
		assert.Equal(t, 0.0, ComputeChannelPrice(-10, 12))
	})

	t.Run("após o canal descontar a taxa o lojista recebe o preço de cardápio", func(t *testing.T) {
		price := ComputeChannelPrice(30, 12)
		assert.InDelta(t, 30.0, price*(1-0.12), 0.0001)
	})

	t.Run("preço cresce monotonicamente com a taxa", func(t *testing.T) {
		previous := ComputeChannelPrice(30, 1)
		for rate := 5.0; rate < 100; rate += 5 {
			current := ComputeChannelPrice(30, rate)
			assert.Greater(t, current, previous, "taxa %.0f%%", rate)
			previous = current
		}
	})
}

func TestComputeAllChannelPrices(t *testing.T) {
	channels := []*SalesChannel{
		{ID: 1, Name: "iFood", TotalTaxRate: 12},
		{ID: 2, Name: "Balcão", TotalTaxRate: 0},
		{ID: 3, Name: "Rappi", TotalTaxRate: 14},
	}

	prices := ComputeAllChannelPrices(30, channels)

	assert.Len(t, prices, 3)
	// Ordem da lista de entrada é preservada
	assert.Equal(t, "iFood", prices[0].ChannelName)
	assert.Equal(t, "Balcão", prices[1].ChannelName)
	assert.Equal(t, "Rappi", prices[2].ChannelName)

	assert.InDelta(t, 34.09, prices[0].IdealPrice, 0.01)
	assert.Equal(t, 30.0, prices[1].IdealPrice)
	assert.InDelta(t, 34.88, prices[2].IdealPrice, 0.01)
}

func referenceInput() ProductMetricsInput {
	return ProductMetricsInput{
		CMV:                     10,
		SalePrice:               30,
		FixedCostPercent:        10,
		VariableCostPercent:     12,
		DesiredProfitPercent:    15,
		TotalFixedCosts:         5000,
		EstimatedMonthlySales:   1000,
		AverageMonthlyRevenue:   50000,
		FixedCostAllocationMode: AllocationRevenueBased,
		TargetCMVPercent:        35,
		Channels: []*SalesChannel{
			{ID: 1, Name: "iFood", TotalTaxRate: 12},
		},
	}
}

func TestComputeProductMetrics(t *testing.T) {
	t.Run("cenário de referência com rateio por faturamento", func(t *testing.T) {
		metrics := ComputeProductMetrics(referenceInput())

		assert.True(t, metrics.PricingFeasible)
		assert.InDelta(t, 33.33, metrics.CMVPercent, 0.01)
		assert.InDelta(t, 66.67, metrics.GrossMarginPercent, 0.01)
		assert.InDelta(t, 54.67, metrics.ContributionMarginPercent, 0.01)
		assert.InDelta(t, 3.0, metrics.FixedCostValue, 0.01)
		assert.InDelta(t, 3.6, metrics.VariableCostValue, 0.01)
		assert.InDelta(t, 16.6, metrics.TotalUnitCost, 0.01)
		assert.InDelta(t, 13.4, metrics.ProfitValue, 0.01)
		assert.InDelta(t, 44.67, metrics.ProfitPercent, 0.01)
		assert.Equal(t, StatusHealthy, metrics.MarginStatus)
		assert.Equal(t, StatusHealthy, metrics.CMVStatus)

		// markup = 100/(100-37); preço ideal = 10 * markup
		assert.InDelta(t, 15.87, metrics.IdealMenuPrice, 0.01)
		assert.Len(t, metrics.ChannelPrices, 1)
		assert.InDelta(t, 18.04, metrics.ChannelPrices[0].IdealPrice, 0.01)
	})

	t.Run("rateio por unidade diverge do rateio por faturamento", func(t *testing.T) {
		input := referenceInput()
		input.FixedCostAllocationMode = AllocationPerUnit

		metrics := ComputeProductMetrics(input)

		assert.InDelta(t, 5.0, metrics.FixedCostValue, 0.01, "5000/1000 unidades")
		assert.NotEqual(
			t,
			ComputeProductMetrics(referenceInput()).FixedCostValue,
			metrics.FixedCostValue,
		)
	})

	t.Run("rateio por unidade sem volume estimado zera o custo fixo", func(t *testing.T) {
		input := referenceInput()
		input.FixedCostAllocationMode = AllocationPerUnit
		input.EstimatedMonthlySales = 0

		metrics := ComputeProductMetrics(input)
		assert.Equal(t, 0.0, metrics.FixedCostValue)
	})

	t.Run("preço de venda zero não propaga divisão por zero", func(t *testing.T) {
		input := referenceInput()
		input.SalePrice = 0

		metrics := ComputeProductMetrics(input)

		assert.Equal(t, 0.0, metrics.CMVPercent)
		assert.Equal(t, 0.0, metrics.GrossMarginPercent)
		assert.Equal(t, 0.0, metrics.ContributionMarginPercent)
		assert.Equal(t, 0.0, metrics.ProfitPercent)
	})

	t.Run("estrutura de custos inviável marca precificação como inviável", func(t *testing.T) {
		input := referenceInput()
		input.FixedCostPercent = 50
		input.VariableCostPercent = 30
		input.DesiredProfitPercent = 20

		metrics := ComputeProductMetrics(input)

		assert.False(t, metrics.PricingFeasible)
		assert.Equal(t, 0.0, metrics.Markup)
		assert.Equal(t, 0.0, metrics.IdealMenuPrice)
		assert.Equal(t, 0.0, metrics.ChannelPrices[0].IdealPrice)
	})
}

func TestClassifyCMVBoundaries(t *testing.T) {
	// Empate exato na fronteira cai no nível menos severo
	assert.Equal(t, StatusHealthy, classifyCMV(35, 35))
	assert.Equal(t, StatusWarning, classifyCMV(35.01, 35))
	assert.Equal(t, StatusWarning, classifyCMV(40, 35))
	assert.Equal(t, StatusDanger, classifyCMV(40.01, 35))

	// Meta não configurada usa o padrão de 35%
	assert.Equal(t, StatusHealthy, classifyCMV(35, 0))
	assert.Equal(t, StatusWarning, classifyCMV(36, 0))
}

func TestClassifyMarginBoundaries(t *testing.T) {
	assert.Equal(t, StatusDanger, classifyMargin(-0.01, 15))
	assert.Equal(t, StatusWarning, classifyMargin(0, 15))
	assert.Equal(t, StatusWarning, classifyMargin(14.99, 15))
	assert.Equal(t, StatusHealthy, classifyMargin(15, 15))
	assert.Equal(t, StatusHealthy, classifyMargin(20, 15))
}
