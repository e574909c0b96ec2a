package class

import (
	"errors"
	"strings"
	"time"

	vo "studium/internal/domain/class/valueobjects"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

// Class is a course offering taught by a teacher. Seats are tracked
// separately as a resource pool keyed by the class's ID.
type Class struct {
	id          uint
	title       string
	description string
	teacherID   uint
	capacity    int
	schedule    []vo.ScheduleSlot
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewClass(title, description string, teacherID uint, capacity int, schedule []vo.ScheduleSlot) (*Class, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" || len(title) > maxTitleLength {
		return nil, errors.New("title must be between 1 and 200 characters")
	}
	if len(description) > maxDescriptionLength {
		return nil, errors.New("description exceeds maximum length")
	}
	if teacherID == 0 {
		return nil, errors.New("teacher ID is required")
	}
	if capacity < 0 {
		return nil, errors.New("capacity cannot be negative")
	}
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Class{
		title:       title,
		description: description,
		teacherID:   teacherID,
		capacity:    capacity,
		schedule:    append([]vo.ScheduleSlot(nil), schedule...),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructClass(id uint, title, description string, teacherID uint, capacity int, schedule []vo.ScheduleSlot, version int, createdAt, updatedAt time.Time) *Class {
	return &Class{
		id:          id,
		title:       title,
		description: description,
		teacherID:   teacherID,
		capacity:    capacity,
		schedule:    schedule,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Class) ID() uint              { return c.id }
func (c *Class) Title() string         { return c.title }
func (c *Class) Description() string   { return c.description }
func (c *Class) TeacherID() uint       { return c.teacherID }
func (c *Class) Capacity() int         { return c.capacity }
func (c *Class) Version() int          { return c.version }
func (c *Class) CreatedAt() time.Time  { return c.createdAt }
func (c *Class) UpdatedAt() time.Time  { return c.updatedAt }

// Schedule returns a copy of the weekly slots.
func (c *Class) Schedule() []vo.ScheduleSlot {
	return append([]vo.ScheduleSlot(nil), c.schedule...)
}

func (c *Class) SetID(id uint) error {
	if c.id != 0 {
		return errors.New("class ID already set")
	}
	if id == 0 {
		return errors.New("class ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsTaughtBy reports whether the given user teaches this class.
func (c *Class) IsTaughtBy(userID uint) bool {
	return c.teacherID == userID
}

// UpdateDetails changes title, description and schedule. Capacity is
// changed through SetCapacity so the seat pool can follow.
func (c *Class) UpdateDetails(title, description string, schedule []vo.ScheduleSlot) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" || len(title) > maxTitleLength {
		return errors.New("title must be between 1 and 200 characters")
	}
	if len(description) > maxDescriptionLength {
		return errors.New("description exceeds maximum length")
	}
	if err := validateSchedule(schedule); err != nil {
		return err
	}

	c.title = title
	c.description = description
	c.schedule = append([]vo.ScheduleSlot(nil), schedule...)
	c.version++
	c.updatedAt = time.Now()
	return nil
}

func (c *Class) SetCapacity(capacity int) error {
	if capacity < 0 {
		return errors.New("capacity cannot be negative")
	}
	c.capacity = capacity
	c.version++
	c.updatedAt = time.Now()
	return nil
}

func validateSchedule(schedule []vo.ScheduleSlot) error {
	for i := range schedule {
		for j := i + 1; j < len(schedule); j++ {
			if schedule[i].Overlaps(schedule[j]) {
				return errors.New("schedule slots overlap")
			}
		}
	}
	return nil
}
