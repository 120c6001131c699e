package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/precifica/cost-manager-api/infrastructure/database/postgres"
	"github.com/precifica/cost-manager-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	ListProducts() ([]*domain.Product, error)
	GetProductByID(id int64) (*domain.Product, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
	CreateProductTx(tx *sql.Tx, product *domain.Product) (int64, error)
	UpdateProduct(product *domain.Product) error
	UpdateProductCMV(id int64, cmv float64) error
	DeleteProduct(id int64) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListProducts() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.category, p.cmv, p.sale_price, p.active, p.created_at, p.updated_at").
		From(productsTable).
		Where(squirrel.Eq{"p.deleted": false}).
		OrderBy("p.name ASC").
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.CMV,
			&product.SalePrice,
			&product.Active,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProductByID(id int64) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.category, p.cmv, p.sale_price, p.active, p.created_at, p.updated_at").
		From(productsTable).
		Where(squirrel.Eq{"p.id": id, "p.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}
	err = r.conn.QueryRow(query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.CMV,
		&product.SalePrice,
		&product.Active,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	query, args, err := squirrel.
		Insert("products").
		Columns("name", "category", "cmv", "sale_price", "active").
		Values(product.Name, product.Category, product.CMV, product.SalePrice, true).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir produto: %w", err)
	}

	product.Active = true
	return product, nil
}

// CreateProductTx insere um produto dentro de uma transação já aberta.
// Usado pela confirmação de importação para criar produtos não encontrados
// junto com as vendas, em uma única transação.
func (r *productRepository) CreateProductTx(tx *sql.Tx, product *domain.Product) (int64, error) {
	query, args, err := squirrel.
		Insert("products").
		Columns("name", "category", "cmv", "sale_price", "active").
		Values(product.Name, product.Category, product.CMV, product.SalePrice, true).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir produto na transação: %w", err)
	}

	return id, nil
}

func (r *productRepository) UpdateProduct(product *domain.Product) error {
	query, args, err := squirrel.
		Update("products").
		Set("name", product.Name).
		Set("category", product.Category).
		Set("cmv", product.CMV).
		Set("sale_price", product.SalePrice).
		Set("active", product.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": product.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	return nil
}

func (r *productRepository) UpdateProductCMV(id int64, cmv float64) error {
	query, args, err := squirrel.
		Update("products").
		Set("cmv", cmv).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar CMV do produto: %w", err)
	}

	return nil
}

// DeleteProduct marca o produto como removido sem apagar o histórico de vendas
func (r *productRepository) DeleteProduct(id int64) error {
	query, args, err := squirrel.
		Update("products").
		Set("deleted", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	return nil
}
