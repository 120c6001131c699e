package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/precifica/cost-manager-api/infrastructure/database/postgres"
	"github.com/precifica/cost-manager-api/internal/domain"
)

const (
	recipeItemsTable = "recipe_items ri"
)

type RecipeRepository interface {
	ListByProduct(productID int64) ([]*domain.RecipeItem, error)
	ReplaceForProduct(ctx context.Context, productID int64, items []*domain.RecipeItem) error
}

type recipeRepository struct {
	conn *postgres.Connection
}

func NewRecipeRepository(conn *postgres.Connection) RecipeRepository {
	return &recipeRepository{
		conn: conn,
	}
}

// ListByProduct retorna a ficha técnica do produto com nome e custo unitário
// do insumo já resolvidos para exibição
func (r *recipeRepository) ListByProduct(productID int64) ([]*domain.RecipeItem, error) {
	query, args, err := squirrel.
		Select(`ri.id, ri.product_id, ri.ingredient_id, ri.quantity, i.name,
			CASE WHEN i.package_quantity > 0 THEN i.package_price / i.package_quantity ELSE 0 END`).
		From(recipeItemsTable).
		Join("ingredients i ON i.id = ri.ingredient_id").
		Where(squirrel.Eq{"ri.product_id": productID}).
		OrderBy("ri.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.RecipeItem, 0)
	for rows.Next() {
		item := &domain.RecipeItem{}
		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.IngredientID,
			&item.Quantity,
			&item.IngredientName,
			&item.UnitCost,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item da ficha técnica: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

// ReplaceForProduct substitui a ficha técnica inteira do produto em uma
// transação. A recomposição do CMV fica a cargo do serviço de catálogo.
func (r *recipeRepository) ReplaceForProduct(ctx context.Context, productID int64, items []*domain.RecipeItem) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := squirrel.
			Delete("recipe_items").
			Where(squirrel.Eq{"product_id": productID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao limpar ficha técnica: %w", err)
		}

		if len(items) == 0 {
			return nil
		}

		builder := squirrel.
			Insert("recipe_items").
			Columns("product_id", "ingredient_id", "quantity").
			PlaceholderFormat(squirrel.Dollar)

		for _, item := range items {
			builder = builder.Values(productID, item.IngredientID, item.Quantity)
		}

		insertQuery, insertArgs, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir itens da ficha técnica: %w", err)
		}

		return nil
	})
}
