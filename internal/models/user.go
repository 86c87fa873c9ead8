package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role in the platform.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCoach      Role = "coach"
	RoleSuperadmin Role = "superadmin"
)

// User represents a platform user. OrganizationIDs lists the tenants the
// user belongs to; a superadmin may act in any tenant.
type User struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Password        string      `json:"-"`
	Role            Role        `json:"role"`
	OrganizationIDs []uuid.UUID `json:"organization_ids"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// MemberOf reports whether the user belongs to the organization.
// Superadmins are members of every organization.
func (u *User) MemberOf(orgID uuid.UUID) bool {
	if u.Role == RoleSuperadmin {
		return true
	}
	for _, id := range u.OrganizationIDs {
		if id == orgID {
			return true
		}
	}
	return false
}

// UserPublic is User without sensitive fields for API responses.
type UserPublic struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Role            Role        `json:"role"`
	OrganizationIDs []uuid.UUID `json:"organization_ids"`
	CreatedAt       time.Time   `json:"created_at"`
}

// ToPublic converts User to UserPublic.
func (u *User) ToPublic() UserPublic {
	return UserPublic{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		OrganizationIDs: u.OrganizationIDs,
		CreatedAt:       u.CreatedAt,
	}
}
