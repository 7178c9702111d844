package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yagizdemir/course-marketplace/internal/domain"
	"github.com/yagizdemir/course-marketplace/internal/repository"
)

type CourseRepositorySuite struct {
	BaseSuite
}

func TestCourseRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(CourseRepositorySuite))
}

func defaultFilters() domain.CourseFilters {
	return domain.CourseFilters{Page: 1, PageSize: 10, Sort: "-created_at"}
}

func (s *CourseRepositorySuite) TestGetAllForAnonymousCaller() {
	repo := repository.NewPostgresCourseRepository(s.db)

	price := decimal.RequireFromString("19.99")
	categoryId := s.seedCategory("Engineering")
	courseId := s.seedCourse("Go Fundamentals", &price, true, &categoryId, time.Now())
	s.seedChapter(courseId, 1, true)
	s.seedChapter(courseId, 2, true)
	s.seedChapter(courseId, 3, false)

	// Unpublished courses never surface in the catalog.
	s.seedCourse("Drafts of Go", &price, false, &categoryId, time.Now())

	cards, metadata, err := repo.GetAll(context.Background(), 0, defaultFilters())
	require.NoError(s.T(), err)
	require.Len(s.T(), cards, 1)

	card := cards[0]
	require.Equal(s.T(), courseId, card.ID)
	require.Equal(s.T(), "Go Fundamentals", card.Title)
	require.Equal(s.T(), "Engineering", *card.Category)
	require.Equal(s.T(), 2, card.ChaptersCount)
	require.True(s.T(), card.Price.Equal(price))
	require.Nil(s.T(), card.Progress)

	require.Equal(s.T(), 1, metadata.TotalRecords)
	require.Equal(s.T(), 1, metadata.CurrentPage)
}

func (s *CourseRepositorySuite) TestGetAllComputesProgressForOwnedCourses() {
	repo := repository.NewPostgresCourseRepository(s.db)

	price := decimal.RequireFromString("25.00")
	userId := s.seedUser("student@example.com")
	courseId := s.seedCourse("Go Fundamentals", &price, true, nil, time.Now())
	first := s.seedChapter(courseId, 1, true)
	second := s.seedChapter(courseId, 2, true)
	s.seedPurchase(userId, courseId)
	s.seedChapterProgress(userId, first, true)
	s.seedChapterProgress(userId, second, false)

	cards, _, err := repo.GetAll(context.Background(), userId, defaultFilters())
	require.NoError(s.T(), err)
	require.Len(s.T(), cards, 1)

	require.NotNil(s.T(), cards[0].Progress)
	require.InDelta(s.T(), 50.0, *cards[0].Progress, 0.001)
}

func (s *CourseRepositorySuite) TestGetAllOwnedCourseWithoutChaptersHasZeroProgress() {
	repo := repository.NewPostgresCourseRepository(s.db)

	price := decimal.RequireFromString("25.00")
	userId := s.seedUser("student@example.com")
	courseId := s.seedCourse("Coming Soon", &price, true, nil, time.Now())
	s.seedPurchase(userId, courseId)

	cards, _, err := repo.GetAll(context.Background(), userId, defaultFilters())
	require.NoError(s.T(), err)
	require.Len(s.T(), cards, 1)

	require.NotNil(s.T(), cards[0].Progress)
	require.Zero(s.T(), *cards[0].Progress)
}

func (s *CourseRepositorySuite) TestGetAllFiltersBySearchTerm() {
	repo := repository.NewPostgresCourseRepository(s.db)

	price := decimal.RequireFromString("10.00")
	s.seedCourse("Go Fundamentals", &price, true, nil, time.Now())
	s.seedCourse("Cooking Basics", &price, true, nil, time.Now())

	filters := defaultFilters()
	filters.Term = "cooking"

	cards, metadata, err := repo.GetAll(context.Background(), 0, filters)
	require.NoError(s.T(), err)
	require.Len(s.T(), cards, 1)
	require.Equal(s.T(), "Cooking Basics", cards[0].Title)
	require.Equal(s.T(), 1, metadata.TotalRecords)
}

func (s *CourseRepositorySuite) TestGetAllHonorsSortOrder() {
	repo := repository.NewPostgresCourseRepository(s.db)

	cheap := decimal.RequireFromString("5.00")
	costly := decimal.RequireFromString("50.00")
	now := time.Now()
	s.seedCourse("Costly", &costly, true, nil, now.Add(-time.Hour))
	s.seedCourse("Cheap", &cheap, true, nil, now)

	filters := defaultFilters()
	filters.Sort = "price"

	cards, _, err := repo.GetAll(context.Background(), 0, filters)
	require.NoError(s.T(), err)
	require.Len(s.T(), cards, 2)
	require.Equal(s.T(), "Cheap", cards[0].Title)
	require.Equal(s.T(), "Costly", cards[1].Title)

	// The default orders by most recently created first.
	cards, _, err = repo.GetAll(context.Background(), 0, defaultFilters())
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Cheap", cards[0].Title)
	require.Equal(s.T(), "Costly", cards[1].Title)
}

func (s *CourseRepositorySuite) TestGetAllPaginates() {
	repo := repository.NewPostgresCourseRepository(s.db)

	price := decimal.RequireFromString("10.00")
	now := time.Now()
	s.seedCourse("First", &price, true, nil, now.Add(-2*time.Hour))
	s.seedCourse("Second", &price, true, nil, now.Add(-time.Hour))
	s.seedCourse("Third", &price, true, nil, now)

	filters := defaultFilters()
	filters.PageSize = 2
	filters.Page = 2

	cards, metadata, err := repo.GetAll(context.Background(), 0, filters)
	require.NoError(s.T(), err)
	require.Len(s.T(), cards, 1)
	require.Equal(s.T(), "First", cards[0].Title)

	require.Equal(s.T(), 3, metadata.TotalRecords)
	require.Equal(s.T(), 2, metadata.CurrentPage)
	require.Equal(s.T(), 2, metadata.LastPage)
}

func (s *CourseRepositorySuite) TestGetPublishedById() {
	repo := repository.NewPostgresCourseRepository(s.db)

	price := decimal.RequireFromString("19.99")
	publishedId := s.seedCourse("Go Fundamentals", &price, true, nil, time.Now())
	unpublishedId := s.seedCourse("Drafts of Go", &price, false, nil, time.Now())

	course, err := repo.GetPublishedById(context.Background(), publishedId)
	require.NoError(s.T(), err)
	require.Equal(s.T(), publishedId, course.ID)
	require.True(s.T(), course.Price.Equal(price))

	// Unpublished courses are indistinguishable from missing ones.
	_, err = repo.GetPublishedById(context.Background(), unpublishedId)
	require.ErrorIs(s.T(), err, domain.ErrRecordNotFound)

	_, err = repo.GetPublishedById(context.Background(), "3f0c7a2e-9a1d-4a57-bb1e-6a8f4f0a2d11")
	require.ErrorIs(s.T(), err, domain.ErrRecordNotFound)
}
