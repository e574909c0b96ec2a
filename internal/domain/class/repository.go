package class

import (
	"context"

	"studium/internal/shared/utils"
)

// Repository defines persistence operations for class offerings.
type Repository interface {
	Save(ctx context.Context, c *Class) error
	Update(ctx context.Context, c *Class) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Class, error)

	// List returns classes ordered by title, optionally filtered by a
	// case-insensitive title substring.
	List(ctx context.Context, search string, pagination utils.Pagination) ([]*Class, int64, error)

	// ListByTeacher returns the teacher's classes ordered by title.
	ListByTeacher(ctx context.Context, teacherID uint, pagination utils.Pagination) ([]*Class, int64, error)
}

// FeedbackRepository defines persistence operations for class feedback.
type FeedbackRepository interface {
	Save(ctx context.Context, f *Feedback) error

	// ListByClass returns feedback for the class newest first.
	ListByClass(ctx context.Context, classID uint, pagination utils.Pagination) ([]*Feedback, int64, error)

	// HasFeedback reports whether the student already rated the class.
	HasFeedback(ctx context.Context, classID, studentID uint) (bool, error)
}
