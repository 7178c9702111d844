package domain

import (
	"context"
	"time"
)

// Purchase existence alone is what the checkout flow consumes; the pair
// (UserID, CourseID) is the primary key, so a course can be bought once.
type Purchase struct {
	UserID    int
	CourseID  string
	CreatedAt time.Time
}

type PurchaseRepository interface {
	Exists(ctx context.Context, userId int, courseId string) (bool, error)
}
