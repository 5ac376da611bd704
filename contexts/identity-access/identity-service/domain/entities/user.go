package entities

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser        Role = "user"
	RoleContributor Role = "contributor"
	RoleModerator   Role = "moderator"
	RoleAdmin       Role = "admin"
)

// DefaultRegistrationRole is assigned to every self-registered account.
const DefaultRegistrationRole = RoleContributor

func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleUser:
		return RoleUser, true
	case RoleContributor:
		return RoleContributor, true
	case RoleModerator:
		return RoleModerator, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User is the identity record. PasswordHash never leaves the module boundary.
type User struct {
	UserID            string
	Email             string
	Username          string
	PasswordHash      string
	Role              Role
	ContributionCount int
	ContributorRank   int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
