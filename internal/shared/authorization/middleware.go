package authorization

import (
	"github.com/gin-gonic/gin"

	"studium/internal/shared/constants"
)

func requireRole(allowed func(UserRole) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c.GetString(constants.ContextKeyUserRole))
		if !allowed(role) {
			c.JSON(403, gin.H{
				"error": message,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return requireRole(UserRole.IsAdmin, "admin access required")
}

// RequireStaff gates approver endpoints: request decisions, overdue views,
// catalog writes.
func RequireStaff() gin.HandlerFunc {
	return requireRole(UserRole.IsStaff, "staff access required")
}

// RequireClassManager gates class administration endpoints.
func RequireClassManager() gin.HandlerFunc {
	return requireRole(UserRole.CanManageClasses, "teacher or admin access required")
}

// CanAccessOwnedRecord reports whether userID may read a record owned by
// ownerID. Staff see everything; everyone else only their own records.
func CanAccessOwnedRecord(userID uint, userRole UserRole, ownerID uint) bool {
	if userRole.IsStaff() {
		return true
	}
	return userID == ownerID
}
