package domain

import "time"

// Ingredient é um insumo comprado em embalagens (ex.: 5kg de farinha por R$ 20)
type Ingredient struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Unit            string    `json:"unit"`
	PackagePrice    float64   `json:"package_price"`
	PackageQuantity float64   `json:"package_quantity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UnitCost é o custo por unidade de medida do insumo
func (i *Ingredient) UnitCost() float64 {
	if i.PackageQuantity <= 0 {
		return 0
	}

	return i.PackagePrice / i.PackageQuantity
}

// RecipeItem liga um produto a um insumo com a quantidade usada por unidade
// produzida. O CMV do produto é a soma dos custos dos itens da ficha técnica.
type RecipeItem struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	IngredientID int64   `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`

	// Preenchidos na leitura para exibição
	IngredientName string  `json:"ingredient_name,omitempty"`
	UnitCost       float64 `json:"unit_cost,omitempty"`
}

// Cost é o custo deste item dentro da ficha técnica
func (r *RecipeItem) Cost() float64 {
	return r.Quantity * r.UnitCost
}
