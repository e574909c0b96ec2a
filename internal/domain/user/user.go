package user

import (
	"errors"
	"strings"
	"time"

	vo "studium/internal/domain/user/valueobjects"
	"studium/internal/shared/authorization"
)

const (
	minNameLength = 2
	maxNameLength = 100
)

// User is an account in the system. Accounts register themselves, start
// out pending and must be approved by staff before they can sign in.
type User struct {
	id           uint
	name         string
	email        *vo.Email
	passwordHash string
	role         authorization.UserRole
	status       vo.UserStatus
	approvedBy   *uint
	approvedAt   *time.Time
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name string, email *vo.Email, passwordHash string, role authorization.UserRole) (*User, error) {
	name = strings.TrimSpace(name)
	if len(name) < minNameLength || len(name) > maxNameLength {
		return nil, errors.New("name must be between 2 and 100 characters")
	}
	if email == nil {
		return nil, errors.New("email is required")
	}
	if passwordHash == "" {
		return nil, errors.New("password hash is required")
	}
	if !role.IsValid() {
		return nil, errors.New("invalid role")
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       vo.StatusPending,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email *vo.Email,
	passwordHash string,
	role authorization.UserRole,
	status vo.UserStatus,
	approvedBy *uint,
	approvedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       status,
		approvedBy:   approvedBy,
		approvedAt:   approvedAt,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() *vo.Email             { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) Status() vo.UserStatus        { return u.status }
func (u *User) ApprovedBy() *uint            { return u.approvedBy }
func (u *User) ApprovedAt() *time.Time       { return u.approvedAt }
func (u *User) Version() int                 { return u.version }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return errors.New("user ID already set")
	}
	if id == 0 {
		return errors.New("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsActive() bool {
	return u.status == vo.StatusActive
}

func (u *User) IsPending() bool {
	return u.status == vo.StatusPending
}

// CanSignIn reports whether the account may authenticate. Pending and
// suspended accounts are locked out.
func (u *User) CanSignIn() bool {
	return u.status == vo.StatusActive
}

// Approve activates a pending account.
func (u *User) Approve(approverID uint) error {
	if approverID == 0 {
		return errors.New("approver ID is required")
	}
	if u.status != vo.StatusPending {
		return errors.New("user is not pending approval")
	}

	now := time.Now()
	u.status = vo.StatusActive
	u.approvedBy = &approverID
	u.approvedAt = &now
	u.version++
	u.updatedAt = now
	return nil
}

// Suspend locks the account out. Works from pending or active.
func (u *User) Suspend() error {
	if !u.status.CanTransitionTo(vo.StatusSuspended) {
		return errors.New("user is already suspended")
	}
	u.status = vo.StatusSuspended
	u.version++
	u.updatedAt = time.Now()
	return nil
}

// Reinstate reactivates a suspended account.
func (u *User) Reinstate() error {
	if u.status != vo.StatusSuspended {
		return errors.New("user is not suspended")
	}
	u.status = vo.StatusActive
	u.version++
	u.updatedAt = time.Now()
	return nil
}

// ChangePasswordHash replaces the stored credential hash.
func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return errors.New("password hash is required")
	}
	u.passwordHash = hash
	u.version++
	u.updatedAt = time.Now()
	return nil
}
