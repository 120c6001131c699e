package domain

import "time"

// Product é um item do cardápio. CMV é o custo de insumos por unidade,
// derivado da ficha técnica e recalculado a cada alteração de receita.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CMV       float64   `json:"cmv"`
	SalePrice float64   `json:"sale_price"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProductRequest struct {
	ID        int64    `json:"id"`
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	CMV       *float64 `json:"cmv"`
	SalePrice *float64 `json:"sale_price"`
	Active    *bool    `json:"active"`
}
