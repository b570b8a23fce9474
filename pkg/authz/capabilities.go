// Package authz derives UI capabilities from a user's role.
//
// The table is advisory only: it gates what the view layer offers, never
// whether a request is sent. The backend remains the authority of record
// and will answer 403 for anything the role cannot actually do.
package authz

import (
	"github.com/scrapyardhq/scrapdash/pkg/enums"
	"github.com/scrapyardhq/scrapdash/pkg/types"
)

// Capabilities enumerates what the current role may be offered in the UI.
type Capabilities struct {
	CanCreateBox   bool `json:"can_create_box"`
	CanManageSales bool `json:"can_manage_sales"`
	CanPlaceBids   bool `json:"can_place_bids"`
	CanDecideBids  bool `json:"can_decide_bids"`
}

var capabilitiesByRole = map[enums.UserRole]Capabilities{
	enums.UserRoleSuperAdmin: {
		CanCreateBox:   true,
		CanManageSales: true,
		CanPlaceBids:   true,
		CanDecideBids:  true,
	},
	enums.UserRoleSellerAdmin: {
		CanCreateBox:   true,
		CanManageSales: true,
		CanDecideBids:  true,
	},
	enums.UserRoleYardOperator: {
		CanCreateBox: true,
	},
	enums.UserRoleBuyer: {
		CanPlaceBids: true,
	},
	enums.UserRoleInspector: {},
}

// For returns the capability set for a role. Unknown roles get no
// capabilities rather than an error; the role enumeration is extensible.
func For(role enums.UserRole) Capabilities {
	return capabilitiesByRole[role]
}

// ForUser derives capabilities from the session's user. A nil user (logged
// out) holds no capabilities.
func ForUser(user *types.User) Capabilities {
	if user == nil {
		return Capabilities{}
	}
	return For(user.Role)
}
