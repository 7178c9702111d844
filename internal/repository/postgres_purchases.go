package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPurchaseRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPurchaseRepository(db *pgxpool.Pool) *PostgresPurchaseRepository {
	return &PostgresPurchaseRepository{
		db: db,
	}
}

func (p *PostgresPurchaseRepository) Exists(ctx context.Context, userId int, courseId string) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM purchases WHERE user_id = $1 AND course_id = $2
		)`

	var exists bool

	err := p.db.QueryRow(ctx, query, userId, courseId).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
