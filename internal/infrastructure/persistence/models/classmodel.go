package models

import (
	"time"

	"gorm.io/gorm"

	"studium/internal/shared/constants"
)

// ClassModel represents the database persistence model for classes.
// The weekly schedule is stored as a JSON array of slots.
type ClassModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:200"`
	Description string `gorm:"type:text"`
	TeacherID   uint   `gorm:"not null;index:idx_classes_teacher_id"`
	Capacity    int    `gorm:"not null"`
	Schedule    string `gorm:"type:json"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ClassModel) TableName() string {
	return constants.TableClasses
}

// BeforeCreate hook for GORM
func (c *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if c.Version == 0 {
		c.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (c *ClassModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", c.Version+1)
	return nil
}

// FeedbackModel represents the database persistence model for class ratings
type FeedbackModel struct {
	ID        uint   `gorm:"primarykey"`
	ClassID   uint   `gorm:"not null;uniqueIndex:idx_feedback_class_student"`
	StudentID uint   `gorm:"not null;uniqueIndex:idx_feedback_class_student"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (FeedbackModel) TableName() string {
	return constants.TableFeedback
}
