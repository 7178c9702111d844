package app

import (
	"net/http"

	"github.com/yagizdemir/course-marketplace/api"
	"github.com/yagizdemir/course-marketplace/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "-created_at"
)

func (app *Application) GetCoursesHandler(w http.ResponseWriter, r *http.Request, params api.GetCoursesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toCourseFilters(params)

	// Anonymous callers get cards without progress; a zero id never matches
	// a purchase row.
	userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())

	cards, metadata, err := app.courseRepo.GetAll(r.Context(), userId, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CourseListResponse{
		Courses:  toCourseCards(cards),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toCourseFilters(params api.GetCoursesParams) domain.CourseFilters {
	filters := domain.CourseFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}

	return filters
}

func toCourseCards(cards []*domain.CourseCard) []api.CourseCard {
	apiCards := make([]api.CourseCard, len(cards))

	for i, card := range cards {
		apiCards[i] = api.CourseCard{
			Id:             card.ID,
			Title:          card.Title,
			ImageUrl:       card.ImageUrl,
			Category:       card.Category,
			ChaptersLength: card.ChaptersCount,
			Price:          card.Price,
			Progress:       card.Progress,
		}
	}

	return apiCards
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
