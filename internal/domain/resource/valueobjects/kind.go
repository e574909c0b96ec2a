package valueobjects

import "fmt"

// ResourceKind identifies what a unit pool allocates: copies of a book
// title or seats in a class.
type ResourceKind string

const (
	KindBookCopies ResourceKind = "book_copies"
	KindClassSeats ResourceKind = "class_seats"
)

func (k ResourceKind) String() string {
	return string(k)
}

func (k ResourceKind) IsValid() bool {
	return k == KindBookCopies || k == KindClassSeats
}

func NewResourceKind(s string) (ResourceKind, error) {
	k := ResourceKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid resource kind: %s", s)
	}
	return k, nil
}
