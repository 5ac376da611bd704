package httptransport

import "time"

// CheckPermissionRequest describes one action attempted by an authenticated actor.
type CheckPermissionRequest struct {
	ActorID   string `json:"actor_id"`
	Role      string `json:"role"`
	Action    string `json:"action"`
	SubjectID string `json:"subject_id,omitempty"`
}

// CheckPermissionResponse describes one permission decision.
type CheckPermissionResponse struct {
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	Allowed   bool      `json:"allowed"`
	Reason    string    `json:"reason"`
	CheckedAt time.Time `json:"checked_at"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
