package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/precifica/cost-manager-api/infrastructure/database/postgres"
	"github.com/precifica/cost-manager-api/internal/domain"
)

type ChannelRepository interface {
	ListChannels() ([]*domain.SalesChannel, error)
	GetChannelByID(id int64) (*domain.SalesChannel, error)
	CreateChannel(channel *domain.SalesChannel) (*domain.SalesChannel, error)
	UpdateChannel(channel *domain.SalesChannel) error
	DeleteChannel(id int64) (int64, error)
}

type channelRepository struct {
	conn *postgres.Connection
}

func NewChannelRepository(conn *postgres.Connection) ChannelRepository {
	return &channelRepository{
		conn: conn,
	}
}

func (r *channelRepository) ListChannels() ([]*domain.SalesChannel, error) {
	query, args, err := squirrel.
		Select("sc.id, sc.name, sc.total_tax_rate, sc.created_at, sc.updated_at").
		From("sales_channels sc").
		OrderBy("sc.id ASC").
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

	channels := make([]*domain.SalesChannel, 0)
	for rows.Next() {
		channel := &domain.SalesChannel{}
		if err := rows.Scan(&channel.ID, &channel.Name, &channel.TotalTaxRate, &channel.CreatedAt, &channel.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear canal de venda: %w", err)
		}
		channels = append(channels, channel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *channelRepository) GetChannelByID(id int64) (*domain.SalesChannel, error) {
	query, args, err := squirrel.
		Select("sc.id, sc.name, sc.total_tax_rate, sc.created_at, sc.updated_at").
		From("sales_channels sc").
		Where(squirrel.Eq{"sc.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	channel := &domain.SalesChannel{}
	err = r.conn.QueryRow(query, args...).Scan(
		&channel.ID,
		&channel.Name,
		&channel.TotalTaxRate,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear canal de venda: %w", err)
	}

	return channel, nil
}

func (r *channelRepository) CreateChannel(channel *domain.SalesChannel) (*domain.SalesChannel, error) {
	query, args, err := squirrel.
		Insert("sales_channels").
		Columns("name", "total_tax_rate").
		Values(channel.Name, channel.TotalTaxRate).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&channel.ID, &channel.CreatedAt, &channel.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir canal de venda: %w", err)
	}

	return channel, nil
}

func (r *channelRepository) UpdateChannel(channel *domain.SalesChannel) error {
	query, args, err := squirrel.
		Update("sales_channels").
		Set("name", channel.Name).
		Set("total_tax_rate", channel.TotalTaxRate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": channel.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar canal de venda: %w", err)
	}

	return nil
}

func (r *channelRepository) DeleteChannel(id int64) (int64, error) {
	query, args, err := squirrel.
		Delete("sales_channels").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover canal de venda: %w", err)
	}

	return result.RowsAffected()
}
