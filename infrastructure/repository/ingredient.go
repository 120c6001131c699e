package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/precifica/cost-manager-api/infrastructure/database/postgres"
	"github.com/precifica/cost-manager-api/internal/domain"
)

const (
	ingredientsTable = "ingredients i"
)

type IngredientRepository interface {
	ListIngredients() ([]*domain.Ingredient, error)
	GetIngredientByID(id int64) (*domain.Ingredient, error)
	CreateIngredient(ingredient *domain.Ingredient) (*domain.Ingredient, error)
	UpdateIngredient(ingredient *domain.Ingredient) error
	DeleteIngredient(id int64) error
}

type ingredientRepository struct {
	conn *postgres.Connection
}

func NewIngredientRepository(conn *postgres.Connection) IngredientRepository {
	return &ingredientRepository{
		conn: conn,
	}
}

func (r *ingredientRepository) ListIngredients() ([]*domain.Ingredient, error) {
	query, args, err := squirrel.
		Select("i.id, i.name, i.unit, i.package_price, i.package_quantity, i.created_at, i.updated_at").
		From(ingredientsTable).
		OrderBy("i.name ASC").
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

	ingredients := make([]*domain.Ingredient, 0)
	for rows.Next() {
		ingredient := &domain.Ingredient{}
		err := rows.Scan(
			&ingredient.ID,
			&ingredient.Name,
			&ingredient.Unit,
			&ingredient.PackagePrice,
			&ingredient.PackageQuantity,
			&ingredient.CreatedAt,
			&ingredient.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insumo: %w", err)
		}
		ingredients = append(ingredients, ingredient)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientByID(id int64) (*domain.Ingredient, error) {
	query, args, err := squirrel.
		Select("i.id, i.name, i.unit, i.package_price, i.package_quantity, i.created_at, i.updated_at").
		From(ingredientsTable).
		Where(squirrel.Eq{"i.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ingredient := &domain.Ingredient{}
	err = r.conn.QueryRow(query, args...).Scan(
		&ingredient.ID,
		&ingredient.Name,
		&ingredient.Unit,
		&ingredient.PackagePrice,
		&ingredient.PackageQuantity,
		&ingredient.CreatedAt,
		&ingredient.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insumo: %w", err)
	}

	return ingredient, nil
}

func (r *ingredientRepository) CreateIngredient(ingredient *domain.Ingredient) (*domain.Ingredient, error) {
	query, args, err := squirrel.
		Insert("ingredients").
		Columns("name", "unit", "package_price", "package_quantity").
		Values(ingredient.Name, ingredient.Unit, ingredient.PackagePrice, ingredient.PackageQuantity).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&ingredient.ID, &ingredient.CreatedAt, &ingredient.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir insumo: %w", err)
	}

	return ingredient, nil
}

func (r *ingredientRepository) UpdateIngredient(ingredient *domain.Ingredient) error {
	query, args, err := squirrel.
		Update("ingredients").
		Set("name", ingredient.Name).
		Set("unit", ingredient.Unit).
		Set("package_price", ingredient.PackagePrice).
		Set("package_quantity", ingredient.PackageQuantity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ingredient.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar insumo: %w", err)
	}

	return nil
}

func (r *ingredientRepository) DeleteIngredient(id int64) error {
	query, args, err := squirrel.
		Delete("ingredients").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover insumo: %w", err)
	}

	return nil
}
