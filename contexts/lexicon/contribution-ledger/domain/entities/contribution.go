package entities

import (
	"encoding/json"
	"time"
)

type ContributionType string

const (
	ContributionTypeAdd  ContributionType = "add"
	ContributionTypeEdit ContributionType = "edit"
	// ContributionTypeTranslation is reserved and never recorded.
	ContributionTypeTranslation ContributionType = "translation"
)

func (t ContributionType) Recordable() bool {
	return t == ContributionTypeAdd || t == ContributionTypeEdit
}

// Contribution is append-only. Details are kept exactly as submitted.
type Contribution struct {
	ContributionID string
	UserID         string
	WordID         string
	Type           ContributionType
	Details        json.RawMessage
	CreatedAt      time.Time
}
