package valueobjects

import "fmt"

// UserStatus represents the account state. New accounts start pending
// and gain access only after staff approval.
type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

var validUserTransitions = map[UserStatus][]UserStatus{
	StatusPending:   {StatusActive, StatusSuspended},
	StatusActive:    {StatusSuspended},
	StatusSuspended: {StatusActive},
}

func (s UserStatus) String() string {
	return string(s)
}

func (s UserStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended:
		return true
	}
	return false
}

func (s UserStatus) CanTransitionTo(target UserStatus) bool {
	for _, allowed := range validUserTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func NewUserStatus(value string) (UserStatus, error) {
	status := UserStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid user status: %s", value)
	}
	return status, nil
}
