package types

import (
	"time"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
)

// Organization is a seller or buyer company on the marketplace.
type Organization struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is the identity record returned by login and /auth/user/.
// Role is immutable for the lifetime of a session; a role change requires
// re-authentication.
type User struct {
	ID        int64          `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Role      enums.UserRole `json:"role"`
	Org       int64          `json:"org"`
	OrgName   string         `json:"org_name,omitempty"`
	Phone     string         `json:"phone,omitempty"`
}

// FullName joins the name fields for display.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
