package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yagizdemir/course-marketplace/internal/domain"
)

type MockPurchaseRepo struct {
	mock.Mock
	domain.PurchaseRepository
}

func (m *MockPurchaseRepo) Exists(ctx context.Context, userId int, courseId string) (bool, error) {
	args := m.Called(ctx, userId, courseId)
	return args.Bool(0), args.Error(1)
}
