package roles

import (
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// Role is a viewer's relationship to a campaign. It drives which
// workflow operations a request may perform.
type Role string

const (
	// RoleAdmin can act on any campaign and resolve appeals and refunds.
	RoleAdmin Role = "admin"
	// RoleOwner is the buyer who created the campaign.
	RoleOwner Role = "owner"
	// RoleApplicant is a seller with a join request on the campaign.
	RoleApplicant Role = "applicant"
	// RoleUnrelated is any other authenticated user.
	RoleUnrelated Role = "unrelated"
)

// Resolve determines the viewer's role. Admin takes precedence over
// ownership so that an admin's own campaigns still get admin treatment.
func Resolve(user store.User, campaign store.Campaign, joinRequest *store.JoinRequest) Role {
	if user.Role == store.UserRoleAdmin {
		return RoleAdmin
	}
	if campaign.OwnerID == user.ID {
		return RoleOwner
	}
	if joinRequest != nil && joinRequest.UserID == user.ID {
		return RoleApplicant
	}
	return RoleUnrelated
}

// CanViewThread reports whether the viewer may read a join request's
// chat thread. Threads are private to the buyer, the seller and admins.
func CanViewThread(role Role) bool {
	return role == RoleAdmin || role == RoleOwner || role == RoleApplicant
}

// CanManageCampaign reports whether the viewer may edit, cancel or
// delete the campaign.
func CanManageCampaign(role Role) bool {
	return role == RoleAdmin || role == RoleOwner
}
