package integration_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func (s *BaseSuite) seedUser(email string) int {
	var id int

	err := s.db.QueryRow(context.Background(),
		`INSERT INTO users (first_name, last_name, email, password_hash)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
		"John", "Doe", email, []byte("$2a$12$not-a-real-hash")).Scan(&id)
	require.NoError(s.T(), err)

	return id
}

func (s *BaseSuite) seedCategory(name string) string {
	var id string

	err := s.db.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(s.T(), err)

	return id
}

func (s *BaseSuite) seedCourse(title string, price *decimal.Decimal, published bool, categoryId *string, createdAt time.Time) string {
	var id string

	err := s.db.QueryRow(context.Background(),
		`INSERT INTO courses (title, price, is_published, category_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
		title, price, published, categoryId, createdAt).Scan(&id)
	require.NoError(s.T(), err)

	return id
}

func (s *BaseSuite) seedChapter(courseId string, position int, published bool) string {
	var id string

	err := s.db.QueryRow(context.Background(),
		`INSERT INTO chapters (course_id, title, position, is_published)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
		courseId, "Chapter", position, published).Scan(&id)
	require.NoError(s.T(), err)

	return id
}

func (s *BaseSuite) seedChapterProgress(userId int, chapterId string, completed bool) {
	_, err := s.db.Exec(context.Background(),
		`INSERT INTO chapter_progress (user_id, chapter_id, is_completed)
			VALUES ($1, $2, $3)`,
		userId, chapterId, completed)
	require.NoError(s.T(), err)
}

func (s *BaseSuite) seedPurchase(userId int, courseId string) {
	_, err := s.db.Exec(context.Background(),
		`INSERT INTO purchases (user_id, course_id) VALUES ($1, $2)`,
		userId, courseId)
	require.NoError(s.T(), err)
}
