package valueobjects

import "fmt"

// RequestStatus represents the lifecycle state of an allocation request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// validTransitions defines allowed status transitions.
// Approved and rejected are terminal.
var validTransitions = map[RequestStatus][]RequestStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
}

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo checks whether the transition to target is allowed.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func NewRequestStatus(value string) (RequestStatus, error) {
	status := RequestStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", value)
	}
	return status, nil
}
