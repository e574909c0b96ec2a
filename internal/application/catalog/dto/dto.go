package dto

import (
	"time"

	"studium/internal/domain/book"
	"studium/internal/domain/class"
	classvo "studium/internal/domain/class/valueobjects"
)

type BookDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn,omitempty"`
	TotalCopies int       `json:"total_copies"`
	CreatedAt   time.Time `json:"created_at"`
}

func BookToDTO(b *book.Book) *BookDTO {
	return &BookDTO{
		ID:          b.ID(),
		Title:       b.Title(),
		Author:      b.Author(),
		ISBN:        b.ISBN(),
		TotalCopies: b.TotalCopies(),
		CreatedAt:   b.CreatedAt(),
	}
}

func BooksToDTOs(books []*book.Book) []*BookDTO {
	dtos := make([]*BookDTO, 0, len(books))
	for _, b := range books {
		dtos = append(dtos, BookToDTO(b))
	}
	return dtos
}

type ScheduleSlotDTO struct {
	DayOfWeek   int `json:"day_of_week"`
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`
}

type ClassDTO struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	TeacherID   uint              `json:"teacher_id"`
	Capacity    int               `json:"capacity"`
	Schedule    []ScheduleSlotDTO `json:"schedule"`
	CreatedAt   time.Time         `json:"created_at"`
}

func ClassToDTO(c *class.Class) *ClassDTO {
	schedule := make([]ScheduleSlotDTO, 0, len(c.Schedule()))
	for _, slot := range c.Schedule() {
		schedule = append(schedule, ScheduleSlotDTO{
			DayOfWeek:   int(slot.DayOfWeek),
			StartMinute: slot.StartMinute,
			EndMinute:   slot.EndMinute,
		})
	}
	return &ClassDTO{
		ID:          c.ID(),
		Title:       c.Title(),
		Description: c.Description(),
		TeacherID:   c.TeacherID(),
		Capacity:    c.Capacity(),
		Schedule:    schedule,
		CreatedAt:   c.CreatedAt(),
	}
}

func ClassesToDTOs(classes []*class.Class) []*ClassDTO {
	dtos := make([]*ClassDTO, 0, len(classes))
	for _, c := range classes {
		dtos = append(dtos, ClassToDTO(c))
	}
	return dtos
}

// SlotsFromDTOs converts transport slots into value objects, validating
// each one.
func SlotsFromDTOs(slots []ScheduleSlotDTO) ([]classvo.ScheduleSlot, error) {
	out := make([]classvo.ScheduleSlot, 0, len(slots))
	for _, s := range slots {
		slot, err := classvo.NewScheduleSlot(time.Weekday(s.DayOfWeek), s.StartMinute, s.EndMinute)
		if err != nil {
			return nil, err
		}
		out = append(out, slot)
	}
	return out, nil
}

type FeedbackDTO struct {
	ID        uint      `json:"id"`
	ClassID   uint      `json:"class_id"`
	StudentID uint      `json:"student_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FeedbackToDTO(f *class.Feedback) *FeedbackDTO {
	return &FeedbackDTO{
		ID:        f.ID(),
		ClassID:   f.ClassID(),
		StudentID: f.StudentID(),
		Rating:    f.Rating(),
		Comment:   f.Comment(),
		CreatedAt: f.CreatedAt(),
	}
}

func FeedbacksToDTOs(feedbacks []*class.Feedback) []*FeedbackDTO {
	dtos := make([]*FeedbackDTO, 0, len(feedbacks))
	for _, f := range feedbacks {
		dtos = append(dtos, FeedbackToDTO(f))
	}
	return dtos
}
