package entities

import "strings"

// Role mirrors the role names stored on user accounts.
type Role string

const (
	RoleUser        Role = "user"
	RoleContributor Role = "contributor"
	RoleModerator   Role = "moderator"
	RoleAdmin       Role = "admin"
)

func ParseRole(raw string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	switch role {
	case RoleUser, RoleContributor, RoleModerator, RoleAdmin:
		return role, true
	default:
		return "", false
	}
}

// Action is a protected operation checked against the policy table.
type Action string

const (
	ActionCreateLanguage          Action = "create_language"
	ActionCreateWord              Action = "create_word"
	ActionUpdateWord              Action = "update_word"
	ActionViewOwnContributions    Action = "view_own_contributions"
	ActionViewOthersContributions Action = "view_others_contributions"
)
