package authorization

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleLibrarian UserRole = "librarian"
	RoleTeacher   UserRole = "teacher"
	RoleStudent   UserRole = "student"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role may decide borrow requests and manage
// the catalog.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleLibrarian
}

// CanManageClasses reports whether the role may create and edit classes.
func (r UserRole) CanManageClasses() bool {
	return r == RoleAdmin || r == RoleTeacher
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleStudent
}
