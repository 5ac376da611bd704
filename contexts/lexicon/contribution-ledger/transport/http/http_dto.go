package httptransport

import (
	"encoding/json"
	"time"
)

type ContributionResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	WordID           string          `json:"word_id"`
	ContributionType string          `json:"contribution_type"`
	ChangeDetails    json.RawMessage `json:"change_details"`
	CreatedAt        time.Time       `json:"created_at"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
