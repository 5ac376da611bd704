package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"lexicon/contexts/identity-access/identity-service/domain/entities"
	domainerrors "lexicon/contexts/identity-access/identity-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	usernameIndex = "idx_users_username"
	emailIndex    = "idx_users_email"
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

// AutoMigrate creates the users table and its unique indexes when missing.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&userModel{})
}

func (r *Repository) CreateUser(ctx context.Context, user entities.User) error {
	row := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == emailIndex {
				return domainerrors.ErrEmailTaken
			}
			return domainerrors.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	return r.first(ctx, "user_id = ?", strings.TrimSpace(userID))
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (entities.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *Repository) first(ctx context.Context, query string, arg any) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) IncrementContributionCount(ctx context.Context, userID string, at time.Time) error {
	return r.increment(ctx, userID, "contribution_count", at)
}

func (r *Repository) IncrementContributorRank(ctx context.Context, userID string, at time.Time) error {
	return r.increment(ctx, userID, "contributor_rank", at)
}

func (r *Repository) increment(ctx context.Context, userID string, column string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Updates(map[string]any{
			column:       gorm.Expr(column+" + ?", 1),
			"updated_at": at.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

type userModel struct {
	UserID            string    `gorm:"column:user_id;primaryKey"`
	Email             string    `gorm:"column:email;not null;uniqueIndex:idx_users_email"`
	Username          string    `gorm:"column:username;not null;uniqueIndex:idx_users_username"`
	PasswordHash      string    `gorm:"column:password_hash;not null"`
	Role              string    `gorm:"column:role;not null"`
	ContributionCount int       `gorm:"column:contribution_count;not null;default:0"`
	ContributorRank   int       `gorm:"column:contributor_rank;not null;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func userModelFromEntity(item entities.User) userModel {
	return userModel{
		UserID:            strings.TrimSpace(item.UserID),
		Email:             strings.ToLower(strings.TrimSpace(item.Email)),
		Username:          item.Username,
		PasswordHash:      item.PasswordHash,
		Role:              string(item.Role),
		ContributionCount: item.ContributionCount,
		ContributorRank:   item.ContributorRank,
		CreatedAt:         item.CreatedAt.UTC(),
		UpdatedAt:         item.UpdatedAt.UTC(),
	}
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		UserID:            m.UserID,
		Email:             m.Email,
		Username:          m.Username,
		PasswordHash:      m.PasswordHash,
		Role:              entities.Role(m.Role),
		ContributionCount: m.ContributionCount,
		ContributorRank:   m.ContributorRank,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}
