package valueobjects

import "fmt"

// AllocationStatus represents the lifecycle state of a granted allocation.
type AllocationStatus string

const (
	StatusActive   AllocationStatus = "active"
	StatusReleased AllocationStatus = "released"
)

func (s AllocationStatus) String() string {
	return string(s)
}

func (s AllocationStatus) IsValid() bool {
	return s == StatusActive || s == StatusReleased
}

func NewAllocationStatus(value string) (AllocationStatus, error) {
	status := AllocationStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid allocation status: %s", value)
	}
	return status, nil
}
