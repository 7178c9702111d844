package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Course is read-only to the checkout workflow; authoring lives elsewhere.
// A nil Price means the course is not for sale.
type Course struct {
	ID          string
	Title       string
	Description *string
	ImageUrl    *string
	Price       *decimal.Decimal
	IsPublished bool
	CategoryID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CourseCard is the catalog projection backing the course listing: the
// course joined with its category name, published chapter count, and the
// caller's completion percentage when the caller owns the course.
type CourseCard struct {
	ID            string
	Title         string
	ImageUrl      *string
	Category      *string
	ChaptersCount int
	Price         *decimal.Decimal
	Progress      *float64
}

type CourseFilters struct {
	Page     int
	PageSize int
	Term     string
	Sort     string
}

func (f CourseFilters) SortColumn() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f CourseFilters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (f CourseFilters) Limit() int {
	return f.PageSize
}

func (f CourseFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}

type CourseRepository interface {
	// GetAll returns the published course cards. A zero userId means an
	// anonymous caller, for whom no progress is computed.
	GetAll(ctx context.Context, userId int, filters CourseFilters) ([]*CourseCard, *Metadata, error)

	// GetPublishedById returns ErrRecordNotFound for unknown and for
	// unpublished courses alike, so callers cannot detect unpublished ones.
	GetPublishedById(ctx context.Context, id string) (*Course, error)
}
