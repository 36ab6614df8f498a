// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the account type a user holds in the marketplace.
type Role string

const (
	// RoleBuyer indicates a shopper account.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates an account allowed to list products.
	RoleSeller Role = "seller"
	// RoleAdmin indicates a staff account with access to the admin panel.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfRegistrable reports whether a visitor may pick this role at sign-up.
func (r Role) IsSelfRegistrable() bool {
	return r == RoleBuyer || r == RoleSeller
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
