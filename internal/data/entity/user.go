package entity

import "strings"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleStaff    UserRole = "staff"
	RoleCustomer UserRole = "customer"
)

// ValidRole reports whether value names a known role, ignoring case.
func ValidRole(value string) bool {
	switch UserRole(strings.ToLower(value)) {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FullName     string   `db:"full_name"`
	Role         UserRole `db:"role"`
}
