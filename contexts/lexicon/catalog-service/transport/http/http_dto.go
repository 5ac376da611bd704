package httptransport

import "time"

type CreateLanguageRequest struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	NativeName string `json:"native_name,omitempty"`
}

type LanguageResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	NativeName string    `json:"native_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type MeaningDTO struct {
	LanguageID string `json:"language_id"`
	Meaning    string `json:"meaning"`
}

type CreateWordRequest struct {
	Word       string       `json:"word"`
	LanguageID string       `json:"language_id"`
	Meanings   []MeaningDTO `json:"meanings"`
}

type WordResponse struct {
	ID             string       `json:"id"`
	Word           string       `json:"word"`
	LanguageID     string       `json:"language_id"`
	Meanings       []MeaningDTO `json:"meanings"`
	CreatedBy      string       `json:"created_by"`
	LastModifiedBy string       `json:"last_modified_by"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
