package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yagizdemir/course-marketplace/internal/domain"
)

type MockStripeCustomerRepo struct {
	mock.Mock
	domain.StripeCustomerRepository
}

func (m *MockStripeCustomerRepo) GetByUserId(ctx context.Context, userId int) (*domain.StripeCustomer, error) {
	args := m.Called(ctx, userId)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.StripeCustomer), args.Error(1)
}

func (m *MockStripeCustomerRepo) Create(ctx context.Context, customer *domain.StripeCustomer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
