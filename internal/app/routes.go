package app

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/riandyrn/otelchi"
	"github.com/yagizdemir/course-marketplace/api"
)

func (app *Application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.With(app.requireAuthentication).Get("/users/me", app.GetCurrentUser)

	r.Route("/courses", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			params := api.GetCoursesParams{}

			if page := r.URL.Query().Get("page"); page != "" {
				if pageNum, err := strconv.Atoi(page); err == nil {
					params.Page = &pageNum
				}
			}

			if pageSize := r.URL.Query().Get("pageSize"); pageSize != "" {
				if pageSizeNum, err := strconv.Atoi(pageSize); err == nil {
					params.PageSize = &pageSizeNum
				}
			}

			if term := r.URL.Query().Get("term"); term != "" {
				params.Term = &term
			}

			if sort := r.URL.Query().Get("sort"); sort != "" {
				params.Sort = &sort
			}

			app.GetCoursesHandler(w, r, params)
		})

		r.With(app.requireAuthentication).Post("/{courseId}/checkout", func(w http.ResponseWriter, r *http.Request) {
			courseId := chi.URLParam(r, "courseId")

			// Malformed ids are indistinguishable from unknown courses.
			if _, err := uuid.Parse(courseId); err != nil {
				app.notFoundResponse(w, r)
				return
			}

			app.CreateCheckoutSessionHandler(w, r, courseId)
		})
	})

	return r
}
