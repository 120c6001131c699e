package domain

import "time"

// SalesChannel é um canal de venda (iFood, balcão, WhatsApp) com a taxa total
// que o canal desconta sobre cada venda
type SalesChannel struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	TotalTaxRate float64   `json:"total_tax_rate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
