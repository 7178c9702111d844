package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yagizdemir/course-marketplace/internal/domain"
)

type MockPaymentProvider struct {
	mock.Mock
	domain.PaymentProvider
}

func (m *MockPaymentProvider) CreateCustomer(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	params domain.CheckoutSessionParams) (*domain.CheckoutSession, error) {

	args := m.Called(ctx, params)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}
