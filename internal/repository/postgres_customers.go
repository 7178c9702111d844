package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yagizdemir/course-marketplace/internal/domain"
)

type PostgresStripeCustomerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresStripeCustomerRepository(db *pgxpool.Pool) *PostgresStripeCustomerRepository {
	return &PostgresStripeCustomerRepository{
		db: db,
	}
}

func (p *PostgresStripeCustomerRepository) GetByUserId(ctx context.Context, userId int) (*domain.StripeCustomer, error) {
	query := `SELECT user_id, stripe_customer_id, created_at
		FROM stripe_customers
		WHERE user_id = $1`

	var customer domain.StripeCustomer

	err := p.db.QueryRow(ctx, query, userId).Scan(
		&customer.UserID,
		&customer.CustomerID,
		&customer.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &customer, nil
}

func (p *PostgresStripeCustomerRepository) Create(ctx context.Context, customer *domain.StripeCustomer) error {
	query := `INSERT INTO stripe_customers (user_id, stripe_customer_id)
		VALUES ($1, $2)
		RETURNING created_at`

	err := p.db.QueryRow(ctx, query, customer.UserID, customer.CustomerID).Scan(&customer.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// Two concurrent first checkouts raced on the read-then-create;
			// the caller re-reads and proceeds with the mapping that won.
			return domain.ErrCustomerAlreadyExists
		}

		return err
	}

	return nil
}
