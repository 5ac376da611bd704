package services

import (
	"testing"

	"lexicon/contexts/identity-access/authorization-service/domain/entities"
)

func TestPolicyEngineTable(t *testing.T) {
	cases := []struct {
		role   entities.Role
		action entities.Action
		want   bool
	}{
		{entities.RoleUser, entities.ActionCreateLanguage, false},
		{entities.RoleContributor, entities.ActionCreateLanguage, false},
		{entities.RoleModerator, entities.ActionCreateLanguage, true},
		{entities.RoleAdmin, entities.ActionCreateLanguage, true},
		{entities.RoleUser, entities.ActionCreateWord, true},
		{entities.RoleContributor, entities.ActionUpdateWord, true},
		{entities.RoleUser, entities.ActionViewOwnContributions, true},
		{entities.RoleContributor, entities.ActionViewOthersContributions, false},
		{entities.RoleModerator, entities.ActionViewOthersContributions, true},
		{entities.RoleAdmin, entities.ActionViewOthersContributions, true},
		{entities.Role("guest"), entities.ActionCreateWord, false},
		{entities.RoleAdmin, entities.Action("drop_database"), false},
	}
	for _, tc := range cases {
		if got := PolicyEngine(tc.role, tc.action); got != tc.want {
			t.Fatalf("PolicyEngine(%s, %s): expected %v, got %v", tc.role, tc.action, tc.want, got)
		}
	}
}
