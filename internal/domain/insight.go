package domain

import (
	"fmt"
	"sort"
)

// InsightLevel é a severidade de um alerta de precificação
type InsightLevel string

const (
	InsightInfo    InsightLevel = "info"
	InsightWarning InsightLevel = "warning"
	InsightDanger  InsightLevel = "danger"
)

// severidade numérica usada apenas para ordenação (maior = mais grave)
var insightSeverity = map[InsightLevel]int{
	InsightInfo:    1,
	InsightWarning: 2,
	InsightDanger:  3,
}

// Tolerância de 5% abaixo do preço ideal antes de gerar alerta — evita ruído
// com preços praticamente ideais
const priceBelowIdealTolerance = 0.05

// Abaixo dessa fração do preço ideal o alerta de preço sobe de info para warning
const priceGapWarningRatio = 0.80

// Insight é um alerta acionável derivado das métricas de um produto
type Insight struct {
	Key    string       `json:"key"`
	Level  InsightLevel `json:"level"`
	Title  string       `json:"title"`
	Detail string       `json:"detail"`
}

// BuildInsights traduz as métricas de um produto em uma lista ordenada de
// alertas. Cada regra é avaliada de forma independente; várias podem coexistir.
// Produto sem preço de venda não gera alerta algum — não há dado para analisar.
func BuildInsights(product *Product, metrics *ProductMetrics) []*Insight {
	if product == nil || metrics == nil || product.SalePrice <= 0 {
		return []*Insight{}
	}

	insights := make([]*Insight, 0, 4)

	if metrics.MarginStatus == StatusDanger {
		insights = append(insights, &Insight{
			Key:   "negative_margin",
			Level: InsightDanger,
			Title: fmt.Sprintf("%s está dando prejuízo", product.Name),
			Detail: fmt.Sprintf(
				"O custo total por unidade (R$ %.2f) supera o preço de venda (R$ %.2f)",
				metrics.TotalUnitCost, product.SalePrice,
			),
		})
	}

	if metrics.CMVStatus != StatusHealthy {
		level := InsightWarning
		if metrics.CMVStatus == StatusDanger {
			level = InsightDanger
		}
		insights = append(insights, &Insight{
			Key:   "cmv_above_target",
			Level: level,
			Title: fmt.Sprintf("CMV de %s acima da meta", product.Name),
			Detail: fmt.Sprintf(
				"O CMV representa %.1f%% do preço de venda",
				metrics.CMVPercent,
			),
		})
	}

	// Suprimido quando a margem já é danger: é o mesmo problema de fundo,
	// não reportamos duas vezes
	if metrics.MarginStatus == StatusWarning {
		insights = append(insights, &Insight{
			Key:   "profit_below_desired",
			Level: InsightWarning,
			Title: fmt.Sprintf("Lucro de %s abaixo do desejado", product.Name),
			Detail: fmt.Sprintf(
				"A margem de lucro atual é de %.1f%%",
				metrics.ProfitPercent,
			),
		})
	}

	if metrics.IdealMenuPrice > 0 && product.SalePrice < metrics.IdealMenuPrice*(1-priceBelowIdealTolerance) {
		level := InsightInfo
		if product.SalePrice < metrics.IdealMenuPrice*priceGapWarningRatio {
			level = InsightWarning
		}
		insights = append(insights, &Insight{
			Key:   "price_below_ideal",
			Level: level,
			Title: fmt.Sprintf("%s está abaixo do preço ideal", product.Name),
			Detail: fmt.Sprintf(
				"Preço atual R$ %.2f, preço ideal sugerido R$ %.2f",
				product.SalePrice, metrics.IdealMenuPrice,
			),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insightSeverity[insights[i].Level] > insightSeverity[insights[j].Level]
	})

	return insights
}

// WorstInsightLevel retorna o nível mais severo presente na lista.
// O segundo retorno é false para lista vazia.
func WorstInsightLevel(insights []*Insight) (InsightLevel, bool) {
	if len(insights) == 0 {
		return "", false
	}

	worst := insights[0].Level
	for _, insight := range insights[1:] {
		if insightSeverity[insight.Level] > insightSeverity[worst] {
			worst = insight.Level
		}
	}

	return worst, true
}
