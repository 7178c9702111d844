package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yagizdemir/course-marketplace/api"
	"github.com/yagizdemir/course-marketplace/internal/domain"
)

// CreateCheckoutSessionHandler runs the whole purchase flow for one course:
// resolve the buyer, load the published course, reject repeat purchases,
// reuse or create the Stripe customer, then hand back the hosted checkout URL.
func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request, courseId string) {
	logger := app.contextGetLogger(r)

	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("checkout attempt with a session bound to a deleted user")
			app.unauthorizedAccessResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if user.Email == "" {
		app.unauthorizedAccessResponse(w, r)
		return
	}

	course, err := app.courseRepo.GetPublishedById(r.Context(), courseId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if course.Price == nil || !course.Price.IsPositive() {
		logger.Warn("checkout attempt for unpriced course", "courseId", course.ID)
		app.badRequestResponse(w, r, fmt.Errorf("course price not set"))
		return
	}

	purchased, err := app.purchaseRepo.Exists(r.Context(), userId, course.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if purchased {
		app.badRequestResponse(w, r, fmt.Errorf("course already purchased"))
		return
	}

	customer, err := app.customerRepo.GetByUserId(r.Context(), userId)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	if customer == nil {
		customerId, err := app.paymentProvider.CreateCustomer(r.Context(), user.Email)
		if err != nil {
			app.paymentProviderErrorResponse(w, r, err)
			return
		}

		customer = &domain.StripeCustomer{
			UserID:     userId,
			CustomerID: customerId,
		}

		err = app.customerRepo.Create(r.Context(), customer)
		if errors.Is(err, domain.ErrCustomerAlreadyExists) {
			// A concurrent checkout won the insert; the stored mapping wins.
			customer, err = app.customerRepo.GetByUserId(r.Context(), userId)
		}
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	if app.config.baseUrl == "" {
		logger.Error("public base URL is not configured", "flag", "base-url")
		app.serverErrorResponse(w, r, fmt.Errorf("missing base-url configuration"))
		return
	}

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(r.Context(), domain.CheckoutSessionParams{
		CustomerID:  customer.CustomerID,
		CourseID:    course.ID,
		UserID:      userId,
		Title:       course.Title,
		Description: course.Description,
		Price:       *course.Price,
		SuccessURL:  fmt.Sprintf("%s/courses/%s?success=1", app.config.baseUrl, course.ID),
		CancelURL:   fmt.Sprintf("%s/courses/%s?cancelled=1", app.config.baseUrl, course.ID),
	})
	if err != nil {
		app.paymentProviderErrorResponse(w, r, err)
		return
	}

	resp := api.CheckoutSessionResponse{
		Url: checkoutSession.URL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
