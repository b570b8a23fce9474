package enums

import "fmt"

// UserRole represents a staff or buyer role assigned by the backend.
//
// The set is extensible: deployments have been observed with and without
// INSPECTOR, so callers must never switch exhaustively over roles without a
// default branch. Unknown roles survive JSON decoding as raw values.
type UserRole string

const (
	UserRoleSuperAdmin   UserRole = "SUPER_ADMIN"
	UserRoleSellerAdmin  UserRole = "SELLER_ADMIN"
	UserRoleYardOperator UserRole = "YARD_OPERATOR"
	UserRoleBuyer        UserRole = "BUYER"
	UserRoleInspector    UserRole = "INSPECTOR"
)

var knownUserRoles = []UserRole{
	UserRoleSuperAdmin,
	UserRoleSellerAdmin,
	UserRoleYardOperator,
	UserRoleBuyer,
	UserRoleInspector,
}

// String implements fmt.Stringer.
func (u UserRole) String() string {
	return string(u)
}

// IsKnown reports whether the value is a role this client recognizes.
func (u UserRole) IsKnown() bool {
	for _, candidate := range knownUserRoles {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range knownUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
