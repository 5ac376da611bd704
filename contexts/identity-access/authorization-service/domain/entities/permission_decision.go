package entities

import "time"

// PermissionDecision is the outcome of one permission check.
type PermissionDecision struct {
	ActorID   string
	Role      Role
	Action    Action
	Allowed   bool
	Reason    string
	CheckedAt time.Time
}
