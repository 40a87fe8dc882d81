package services

import (
	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/core/domain"
)

// RequestScopeFor builds the blood request visibility filter for a caller.
// Admins see every request, donors see their region, everyone else sees
// only their own requests. Pure function so the role branching is testable
// without a store.
//
// The self-scoped listing deliberately carries no ordering; admin and donor
// listings are newest-first.
func RequestScopeFor(identity domain.Identity, region string) (repositories.RequestScope, error) {
	switch identity.Role {
	case domain.RoleAdmin:
		return repositories.RequestScope{All: true, NewestFirst: true}, nil
	case domain.RoleDonor:
		if region == "" {
			return repositories.RequestScope{}, ErrDonorRegionNotSet
		}
		return repositories.RequestScope{Region: region, NewestFirst: true}, nil
	default:
		return repositories.RequestScope{RequesterID: identity.UserID}, nil
	}
}

// NotificationScopeFor builds the notification visibility filter for a
// caller. Admins see everything; everyone else sees broadcasts to all roles
// plus notifications targeted at their own role and region.
func NotificationScopeFor(identity domain.Identity, region string) repositories.NotificationScope {
	if identity.Role == domain.RoleAdmin {
		return repositories.NotificationScope{All: true}
	}
	return repositories.NotificationScope{
		Role:   string(identity.Role),
		Region: region,
	}
}
