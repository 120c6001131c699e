package domain

import "time"

// FixedCost é um gasto mensal que não varia com o volume vendido
// (aluguel, salários, contador)
type FixedCost struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	MonthlyAmount float64   `json:"monthly_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// VariableCost é um custo percentual incidente sobre cada venda
// (impostos, taxa de cartão)
type VariableCost struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Percent   float64   `json:"percent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
