package domain

import (
	"context"
	"time"
)

// StripeCustomer caches the mapping from a local user to the payment
// provider's customer record, so repeat checkouts reuse the same customer.
// Created lazily on first checkout; never updated or deleted here.
type StripeCustomer struct {
	UserID     int
	CustomerID string
	CreatedAt  time.Time
}

type StripeCustomerRepository interface {
	GetByUserId(ctx context.Context, userId int) (*StripeCustomer, error)

	// Create returns ErrCustomerAlreadyExists when another request won the
	// insert race, in which case callers should re-read and use that mapping.
	Create(ctx context.Context, customer *StripeCustomer) error
}
