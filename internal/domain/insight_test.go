package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insightKeys(insights []*Insight) []string {
	keys := make([]string, 0, len(insights))
	for _, insight := range insights {
		keys = append(keys, insight.Key)
	}
	return keys
}

func TestBuildInsightsSemPrecoDeVenda(t *testing.T) {
	product := &Product{ID: 1, Name: "X-Tudo", SalePrice: 0}
	metrics := ComputeProductMetrics(ProductMetricsInput{CMV: 10, SalePrice: 0})

	insights := BuildInsights(product, metrics)
	assert.Empty(t, insights, "produto sem preço não gera alerta algum")

	assert.Empty(t, BuildInsights(nil, metrics))
	assert.Empty(t, BuildInsights(product, nil))
}

func TestBuildInsightsMargemNegativa(t *testing.T) {
	// CMV maior que o preço de venda: prejuízo direto
	input := referenceInput()
	input.CMV = 40
	metrics := ComputeProductMetrics(input)
	require.Equal(t, StatusDanger, metrics.MarginStatus)

	product := &Product{ID: 1, Name: "X-Tudo", SalePrice: input.SalePrice}
	insights := BuildInsights(product, metrics)

	keys := insightKeys(insights)
	assert.Contains(t, keys, "negative_margin")
	assert.NotContains(t, keys, "profit_below_desired",
		"margem danger suprime o alerta de lucro abaixo do desejado")
}

func TestBuildInsightsLucroAbaixoDoDesejado(t *testing.T) {
	input := referenceInput()
	input.DesiredProfitPercent = 60
	metrics := ComputeProductMetrics(input)
	require.Equal(t, StatusWarning, metrics.MarginStatus)

	product := &Product{ID: 1, Name: "X-Tudo", SalePrice: input.SalePrice}
	insights := BuildInsights(product, metrics)

	keys := insightKeys(insights)
	assert.Contains(t, keys, "profit_below_desired")
	assert.NotContains(t, keys, "negative_margin")
}

func TestBuildInsightsCMVAcimaDaMeta(t *testing.T) {
	input := referenceInput()
	input.TargetCMVPercent = 30 // CMV real é 33.33%
	metrics := ComputeProductMetrics(input)
	require.Equal(t, StatusWarning, metrics.CMVStatus)

	product := &Product{ID: 1, Name: "X-Tudo", SalePrice: input.SalePrice}
	insights := BuildInsights(product, metrics)

	require.Contains(t, insightKeys(insights), "cmv_above_target")
	for _, insight := range insights {
		if insight.Key == "cmv_above_target" {
			assert.Equal(t, InsightWarning, insight.Level, "nível acompanha o status do CMV")
		}
	}
}

func TestBuildInsightsPrecoAbaixoDoIdeal(t *testing.T) {
	t.Run("dentro da tolerância de 5% não gera alerta", func(t *testing.T) {
		input := referenceInput()
		input.CMV = 18 // preço ideal ≈ 28.57, venda a 30
		metrics := ComputeProductMetrics(input)
		require.Greater(t, metrics.IdealMenuPrice, 0.0)
		require.Greater(t, input.SalePrice, metrics.IdealMenuPrice*0.95)

		product := &Product{ID: 1, Name: "X-Tudo", SalePrice: input.SalePrice}
		assert.NotContains(t, insightKeys(BuildInsights(product, metrics)), "price_below_ideal")
	})

	t.Run("abaixo da tolerância gera alerta", func(t *testing.T) {
		input := referenceInput()
		input.CMV = 21 // preço ideal ≈ 33.33, venda a 30
		metrics := ComputeProductMetrics(input)
		require.Greater(t, metrics.IdealMenuPrice*0.95, input.SalePrice)

		product := &Product{ID: 1, Name: "X-Tudo", SalePrice: input.SalePrice}
		assert.Contains(t, insightKeys(BuildInsights(product, metrics)), "price_below_ideal")
	})

	t.Run("preço ideal indisponível não gera alerta", func(t *testing.T) {
		input := referenceInput()
		input.FixedCostPercent = 90
		input.VariableCostPercent = 20 // estrutura inviável, preço ideal = 0
		metrics := ComputeProductMetrics(input)
		require.Equal(t, 0.0, metrics.IdealMenuPrice)

		product := &Product{ID: 1, Name: "X-Tudo", SalePrice: input.SalePrice}
		assert.NotContains(t, insightKeys(BuildInsights(product, metrics)), "price_below_ideal")
	})
}

func TestBuildInsightsOrdenacao(t *testing.T) {
	// Produto ruim em tudo: margem negativa, CMV estourado, preço bem abaixo do ideal
	input := referenceInput()
	input.CMV = 35
	input.TargetCMVPercent = 30
	metrics := ComputeProductMetrics(input)

	product := &Product{ID: 1, Name: "X-Tudo", SalePrice: input.SalePrice}
	insights := BuildInsights(product, metrics)
	require.NotEmpty(t, insights)

	// danger antes de warning antes de info, par a par
	for i := 1; i < len(insights); i++ {
		assert.GreaterOrEqual(
			t,
			insightSeverity[insights[i-1].Level],
			insightSeverity[insights[i].Level],
			"alerta %d (%s) não pode ser mais severo que o anterior", i, insights[i].Key,
		)
	}
}

func TestWorstInsightLevel(t *testing.T) {
	_, ok := WorstInsightLevel(nil)
	assert.False(t, ok)

	_, ok = WorstInsightLevel([]*Insight{})
	assert.False(t, ok)

	worst, ok := WorstInsightLevel([]*Insight{
		{Key: "a", Level: InsightInfo},
		{Key: "b", Level: InsightDanger},
		{Key: "c", Level: InsightWarning},
	})
	assert.True(t, ok)
	assert.Equal(t, InsightDanger, worst)
}
