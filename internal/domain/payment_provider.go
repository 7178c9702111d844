package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutSession is the provider-hosted payment page. It is never stored
// locally; only the redirect URL is handed back to the caller.
type CheckoutSession struct {
	ID  string
	URL string
}

type CheckoutSessionParams struct {
	CustomerID  string
	CourseID    string
	UserID      int
	Title       string
	Description *string
	Price       decimal.Decimal
	SuccessURL  string
	CancelURL   string
}

type PaymentProvider interface {
	CreateCustomer(ctx context.Context, email string) (string, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
}
