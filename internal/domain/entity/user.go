package entity

import (
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// Role is the access level of a user
type Role string

// Roles
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Permission is a named capability granted through a role
type Permission string

// Permissions
const (
	PermWalletApprove  Permission = "wallet.approve"
	PermWalletAdjust   Permission = "wallet.adjust"
	PermPackagesManage Permission = "packages.manage"
	PermUsersManage    Permission = "users.manage"
	PermSettingsManage Permission = "settings.manage"
	PermDevicesViewAll Permission = "devices.view_all"
	PermChatUse        Permission = "chat.use"
	PermWalletUse      Permission = "wallet.use"
)

// MinPasswordLength is the shortest accepted plain-text password
const MinPasswordLength = 8

// rolePermissions lists what each non-admin role may do. Admins hold every permission.
var rolePermissions = map[Role][]Permission{
	RoleUser: {PermChatUse, PermWalletUse},
}

// IsValidRole reports whether role is a known role
func IsValidRole(role string) bool {
	return role == string(RoleAdmin) || role == string(RoleUser)
}

// HasPermission reports whether the role grants perm
func (r Role) HasPermission(perm Permission) bool {
	if r == RoleAdmin {
		return true
	}
	for _, p := range rolePermissions[r] {
		if p == perm {
			return true
		}
	}
	return false
}

// User is an account of the console, either an end user or an administrator
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates an active user after validating name and email.
// The password must already be hashed.
func NewUser(name, email, passwordHash string, role Role, timeProvider coreport.TimeProvider) (*User, error) {
	v := errs.NewValidationError()

	name = strings.TrimSpace(name)
	if name == "" {
		v.Add("name", "is required")
	} else if len(name) > 100 {
		v.Add("name", "must be at most 100 characters")
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		v.Add("email", "must be a valid email address")
	}

	if passwordHash == "" {
		v.Add("password", "is required")
	}
	if !IsValidRole(string(role)) {
		v.Add("role", "must be admin or user")
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Email:        normalized,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeEmail lower-cases and validates an email address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.ErrInvalidRequest
	}
	return email, nil
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Can reports whether the user may perform perm
func (u *User) Can(perm Permission) bool {
	return u.Active && u.Role.HasPermission(perm)
}
