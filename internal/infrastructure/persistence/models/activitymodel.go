package models

import (
	"time"

	"studium/internal/shared/constants"
)

// ActivityModel represents the database persistence model for the
// activity feed. Rows are append-only.
type ActivityModel struct {
	ID         uint      `gorm:"primarykey"`
	EventType  string    `gorm:"not null;size:50;index:idx_activities_event_type"`
	ActorID    uint      `gorm:"not null;index:idx_activities_actor"`
	SubjectID  uint      `gorm:"not null"`
	Message    string    `gorm:"not null;size:500"`
	OccurredAt time.Time `gorm:"not null;index:idx_activities_occurred_at"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ActivityModel) TableName() string {
	return constants.TableActivities
}
