package migration

import (
	"studium/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the auto-migrate
// strategy reconciles.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.BookModel{},
		&models.ClassModel{},
		&models.FeedbackModel{},
		&models.ResourceModel{},
		&models.RequestModel{},
		&models.AllocationModel{},
		&models.ActivityModel{},
	}
}
