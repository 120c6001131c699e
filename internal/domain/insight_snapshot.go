package domain

import "time"

// InsightSnapshot é o resultado pré-calculado dos alertas de um produto,
// gravado pelo agendador noturno e lido pela central de ações
type InsightSnapshot struct {
	ID           int64        `json:"id"`
	ProductID    int64        `json:"product_id"`
	ProductName  string       `json:"product_name"`
	WorstLevel   InsightLevel `json:"worst_level"`
	DangerCount  int          `json:"danger_count"`
	WarningCount int          `json:"warning_count"`
	InfoCount    int          `json:"info_count"`
	ComputedAt   time.Time    `json:"computed_at"`
}

// CountInsightLevels separa a lista de alertas por severidade
func CountInsightLevels(insights []*Insight) (danger, warning, info int) {
	for _, insight := range insights {
		switch insight.Level {
		case InsightDanger:
			danger++
		case InsightWarning:
			warning++
		case InsightInfo:
			info++
		}
	}

	return danger, warning, info
}
