package payment

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/yagizdemir/course-marketplace/internal/domain"
)

type StripePaymentProvider struct{}

func NewStripePaymentProvider() *StripePaymentProvider {
	return &StripePaymentProvider{}
}

func (s *StripePaymentProvider) CreateCustomer(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx

	c, err := customer.New(params)
	if err != nil {
		return "", wrapProviderError(err)
	}

	return c.ID, nil
}

func (s *StripePaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	p domain.CheckoutSessionParams) (*domain.CheckoutSession, error) {

	params := newSessionParams(p)
	params.Context = ctx

	checkoutSession, err := session.New(params)
	if err != nil {
		return nil, wrapProviderError(err)
	}

	return &domain.CheckoutSession{
		ID:  checkoutSession.ID,
		URL: checkoutSession.URL,
	}, nil
}

func newSessionParams(p domain.CheckoutSessionParams) *stripe.CheckoutSessionParams {
	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(p.Title),
	}

	// Stripe rejects empty descriptions, so the field is omitted rather than
	// sent as "".
	if p.Description != nil && *p.Description != "" {
		productData.Description = stripe.String(*p.Description)
	}

	lineItem := &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:    stripe.String(string(stripe.CurrencyUSD)),
			UnitAmount:  stripe.Int64(toMinorUnits(p.Price)),
			ProductData: productData,
		},
		Quantity: stripe.Int64(1),
	}

	return &stripe.CheckoutSessionParams{
		Customer:   stripe.String(p.CustomerID),
		LineItems:  []*stripe.CheckoutSessionLineItemParams{lineItem},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
		Metadata: map[string]string{
			"courseId": p.CourseID,
			"userId":   strconv.Itoa(p.UserID),
		},
	}
}

// toMinorUnits converts a price in major currency units to cents, rounding
// half away from zero. Truncation would systematically underprice.
func toMinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func wrapProviderError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &domain.PaymentProviderError{
			Message: stripeErr.Msg,
			Err:     err,
		}
	}

	return err
}
