package domain

import "time"

// Sale é um registro de venda importado. BatchID identifica o lote de
// importação para permitir desfazer o lote inteiro depois.
type Sale struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	SalePrice float64   `json:"sale_price"`
	SoldAt    time.Time `json:"sold_at"`
	BatchID   string    `json:"batch_id"`
	CreatedAt time.Time `json:"created_at"`
}
