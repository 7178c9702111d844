package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yagizdemir/course-marketplace/internal/domain"
)

type PostgresCourseRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCourseRepository(db *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{
		db: db,
	}
}

func (p *PostgresCourseRepository) GetAll(
	ctx context.Context,
	userId int,
	filters domain.CourseFilters) ([]*domain.CourseCard, *domain.Metadata, error) {

	// The sort column comes from an allowlist validated at the handler, never
	// from raw user input.
	query := fmt.Sprintf(`SELECT count(*) OVER(), c.id, c.title, c.image_url, c.price, cat.name,
			(SELECT count(*) FROM chapters ch
				WHERE ch.course_id = c.id AND ch.is_published = TRUE) AS chapters_count,
			pur.user_id IS NOT NULL AS purchased,
			(SELECT count(*) FROM chapters ch
				JOIN chapter_progress cp ON cp.chapter_id = ch.id
				WHERE ch.course_id = c.id
					AND ch.is_published = TRUE
					AND cp.user_id = $1
					AND cp.is_completed = TRUE) AS completed_count
		FROM courses c
		LEFT JOIN categories cat ON cat.id = c.category_id
		LEFT JOIN purchases pur ON pur.course_id = c.id AND pur.user_id = $1
		WHERE c.is_published = TRUE
			AND ((to_tsvector('english', c.title) @@ plainto_tsquery('english', $2)
				OR to_tsvector('english', coalesce(c.description, '')) @@ plainto_tsquery('english', $2))
				OR $2 = '')
		ORDER BY c.%s %s, c.id ASC
		LIMIT $3 OFFSET $4`, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(ctx, query, userId, filters.Term, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	cards := []*domain.CourseCard{}

	for rows.Next() {
		var (
			card           domain.CourseCard
			purchased      bool
			completedCount int
		)

		err := rows.Scan(
			&totalRecords,
			&card.ID,
			&card.Title,
			&card.ImageUrl,
			&card.Price,
			&card.Category,
			&card.ChaptersCount,
			&purchased,
			&completedCount,
		)

		if err != nil {
			return nil, nil, err
		}

		// Progress only exists for owned courses; a card without it renders
		// the price instead. An owned course with no published chapters still
		// carries a zero progress.
		if purchased {
			var progress float64
			if card.ChaptersCount > 0 {
				progress = float64(completedCount) / float64(card.ChaptersCount) * 100
			}
			card.Progress = &progress
		}

		cards = append(cards, &card)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return cards, metadata, nil
}

func (p *PostgresCourseRepository) GetPublishedById(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT id, title, description, image_url, price, is_published, category_id, created_at, updated_at
		FROM courses
		WHERE id = $1 AND is_published = TRUE`

	var course domain.Course

	err := p.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.ImageUrl,
		&course.Price,
		&course.IsPublished,
		&course.CategoryID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &course, nil
}
