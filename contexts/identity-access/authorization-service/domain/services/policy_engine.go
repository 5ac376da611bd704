package services

import "lexicon/contexts/identity-access/authorization-service/domain/entities"

var anyRecognizedRole = []entities.Role{
	entities.RoleUser,
	entities.RoleContributor,
	entities.RoleModerator,
	entities.RoleAdmin,
}

var staffRoles = []entities.Role{
	entities.RoleModerator,
	entities.RoleAdmin,
}

var policy = map[entities.Action][]entities.Role{
	entities.ActionCreateLanguage:          staffRoles,
	entities.ActionCreateWord:              anyRecognizedRole,
	entities.ActionUpdateWord:              anyRecognizedRole,
	entities.ActionViewOwnContributions:    anyRecognizedRole,
	entities.ActionViewOthersContributions: staffRoles,
}

// PolicyEngine reports whether role may perform action.
// Unknown roles and unknown actions are denied.
func PolicyEngine(role entities.Role, action entities.Action) bool {
	for _, allowed := range policy[action] {
		if allowed == role {
			return true
		}
	}
	return false
}

// KnownAction reports whether action has a policy entry.
func KnownAction(action entities.Action) bool {
	_, ok := policy[action]
	return ok
}
