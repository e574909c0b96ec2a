package models

import (
	"time"

	"gorm.io/gorm"

	"studium/internal/shared/constants"
)

// RequestModel represents the database persistence model for requests
type RequestModel struct {
	ID            uint   `gorm:"primarykey"`
	ResourceID    uint   `gorm:"not null;index:idx_requests_resource_status"`
	RequesterID   uint   `gorm:"not null;index:idx_requests_requester"`
	Status        string `gorm:"not null;default:pending;size:20;index:idx_requests_resource_status"`
	RequestedDays int    `gorm:"not null;default:0"`
	Note          string `gorm:"size:500"`
	DecidedBy     *uint
	DecisionNote  string `gorm:"size:500"`
	DecidedAt     *time.Time
	Version       int `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (RequestModel) TableName() string {
	return constants.TableRequests
}

// BeforeCreate hook for GORM
func (r *RequestModel) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = "pending"
	}
	if r.Version == 0 {
		r.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (r *RequestModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", r.Version+1)
	return nil
}
