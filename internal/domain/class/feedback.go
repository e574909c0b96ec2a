package class

import (
	"errors"
	"strings"
	"time"
)

const (
	minRating        = 1
	maxRating        = 5
	maxCommentLength = 1000
)

// Feedback is a rating a student leaves on a class.
type Feedback struct {
	id        uint
	classID   uint
	studentID uint
	rating    int
	comment   string
	createdAt time.Time
}

func NewFeedback(classID, studentID uint, rating int, comment string) (*Feedback, error) {
	if classID == 0 {
		return nil, errors.New("class ID is required")
	}
	if studentID == 0 {
		return nil, errors.New("student ID is required")
	}
	if rating < minRating || rating > maxRating {
		return nil, errors.New("rating must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return nil, errors.New("comment exceeds maximum length")
	}

	return &Feedback{
		classID:   classID,
		studentID: studentID,
		rating:    rating,
		comment:   comment,
		createdAt: time.Now(),
	}, nil
}

func ReconstructFeedback(id, classID, studentID uint, rating int, comment string, createdAt time.Time) *Feedback {
	return &Feedback{
		id:        id,
		classID:   classID,
		studentID: studentID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (f *Feedback) ID() uint             { return f.id }
func (f *Feedback) ClassID() uint        { return f.classID }
func (f *Feedback) StudentID() uint      { return f.studentID }
func (f *Feedback) Rating() int          { return f.rating }
func (f *Feedback) Comment() string      { return f.comment }
func (f *Feedback) CreatedAt() time.Time { return f.createdAt }

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return errors.New("feedback ID already set")
	}
	if id == 0 {
		return errors.New("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}
