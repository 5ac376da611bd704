package postgresadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"lexicon/contexts/lexicon/contribution-ledger/domain/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// AutoMigrate creates the contributions table when missing.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&contributionModel{})
}

func (r *Repository) AppendContribution(ctx context.Context, contribution entities.Contribution) error {
	row := contributionModelFromEntity(contribution)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("contribution append failed",
			"event", "ledger_contribution_append_failed",
			"module", "lexicon/contribution-ledger",
			"layer", "adapter",
			"contribution_id", contribution.ContributionID,
			"user_id", contribution.UserID,
			"error", err.Error(),
		)
		return err
	}
	return nil
}

func (r *Repository) ListContributionsByUser(ctx context.Context, userID string, limit int) ([]entities.Contribution, error) {
	tx := r.db.WithContext(ctx).
		Model(&contributionModel{}).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("created_at ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []contributionModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Contribution, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type contributionModel struct {
	ContributionID   string         `gorm:"column:contribution_id;primaryKey"`
	UserID           string         `gorm:"column:user_id;index:idx_contributions_user_id"`
	WordID           string         `gorm:"column:word_id"`
	ContributionType string         `gorm:"column:contribution_type"`
	ChangeDetails    datatypes.JSON `gorm:"column:change_details;type:jsonb"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
}

func (contributionModel) TableName() string {
	return "contributions"
}

func contributionModelFromEntity(item entities.Contribution) contributionModel {
	return contributionModel{
		ContributionID:   strings.TrimSpace(item.ContributionID),
		UserID:           item.UserID,
		WordID:           item.WordID,
		ContributionType: string(item.Type),
		ChangeDetails:    datatypes.JSON(item.Details),
		CreatedAt:        item.CreatedAt.UTC(),
	}
}

func (m contributionModel) toEntity() entities.Contribution {
	return entities.Contribution{
		ContributionID: m.ContributionID,
		UserID:         m.UserID,
		WordID:         m.WordID,
		Type:           entities.ContributionType(m.ContributionType),
		Details:        json.RawMessage(m.ChangeDetails),
		CreatedAt:      m.CreatedAt.UTC(),
	}
}
