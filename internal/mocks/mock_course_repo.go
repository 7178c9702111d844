package mocks

import (
	"context"

	"github.com/yagizdemir/course-marketplace/internal/domain"
)

type MockCourseRepo struct {
	domain.CourseRepository
	GetAllFunc           func(ctx context.Context, userId int, filters domain.CourseFilters) ([]*domain.CourseCard, *domain.Metadata, error)
	GetPublishedByIdFunc func(ctx context.Context, id string) (*domain.Course, error)
}

func (m *MockCourseRepo) GetAll(
	ctx context.Context,
	userId int,
	filters domain.CourseFilters) ([]*domain.CourseCard, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, userId, filters)
}

func (m *MockCourseRepo) GetPublishedById(ctx context.Context, id string) (*domain.Course, error) {
	return m.GetPublishedByIdFunc(ctx, id)
}
