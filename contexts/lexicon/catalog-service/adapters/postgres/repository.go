package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	domainerrors "lexicon/contexts/lexicon/catalog-service/domain/errors"
	"lexicon/contexts/lexicon/catalog-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
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

// AutoMigrate creates the languages and words tables when missing.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&languageModel{}, &wordModel{})
}

func (r *Repository) CreateLanguage(ctx context.Context, language entities.Language) error {
	row := languageModelFromEntity(language)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrLanguageCodeTaken
		}
		return err
	}
	return nil
}

func (r *Repository) GetLanguage(ctx context.Context, languageID string) (entities.Language, error) {
	return r.firstLanguage(ctx, "language_id = ?", strings.TrimSpace(languageID))
}

func (r *Repository) GetLanguageByCode(ctx context.Context, code string) (entities.Language, error) {
	return r.firstLanguage(ctx, "code = ?", strings.TrimSpace(code))
}

func (r *Repository) firstLanguage(ctx context.Context, query string, arg any) (entities.Language, error) {
	var row languageModel
	err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Language{}, domainerrors.ErrLanguageNotFound
		}
		return entities.Language{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListLanguages(ctx context.Context, limit int) ([]entities.Language, error) {
	tx := r.db.WithContext(ctx).Model(&languageModel{}).Order("created_at ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var rows []languageModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Language, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CountLanguages(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&languageModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *Repository) CreateWord(ctx context.Context, word entities.Word) error {
	row, err := wordModelFromEntity(word)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateWord(ctx context.Context, word entities.Word) error {
	meanings, err := encodeMeanings(word.Meanings)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&wordModel{}).
		Where("word_id = ?", strings.TrimSpace(word.WordID)).
		Updates(map[string]any{
			"word":             word.Text,
			"meanings":         meanings,
			"last_modified_by": word.LastModifiedBy,
			"updated_at":       word.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrWordNotFound
	}
	return nil
}

func (r *Repository) GetWord(ctx context.Context, wordID string) (entities.Word, error) {
	var row wordModel
	err := r.db.WithContext(ctx).
		Where("word_id = ?", strings.TrimSpace(wordID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Word{}, domainerrors.ErrWordNotFound
		}
		return entities.Word{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListWords(ctx context.Context, filter ports.WordFilter) ([]entities.Word, error) {
	tx := r.db.WithContext(ctx).Model(&wordModel{})
	if filter.LanguageID != "" {
		tx = tx.Where("language_id = ?", filter.LanguageID)
	}
	if filter.Contains != "" {
		tx = tx.Where("word ILIKE ?", "%"+escapeLike(filter.Contains)+"%")
	}
	return r.findWords(tx, filter.Limit)
}

func (r *Repository) SearchWords(ctx context.Context, filter ports.SearchFilter) ([]entities.Word, error) {
	tx := r.db.WithContext(ctx).
		Model(&wordModel{}).
		Where("word ILIKE ?", escapeLike(filter.Prefix)+"%")
	if filter.LanguageID != "" {
		tx = tx.Where("language_id = ?", filter.LanguageID)
	}
	return r.findWords(tx, filter.Limit)
}

func (r *Repository) findWords(tx *gorm.DB, limit int) ([]entities.Word, error) {
	tx = tx.Order("created_at ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var rows []wordModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Word, 0, len(rows))
	for _, row := range rows {
		item, err := row.toEntity()
		if err != nil {
			r.logger.Error("word row has unreadable meanings",
				"event", "catalog_word_row_decode_failed",
				"module", "lexicon/catalog-service",
				"layer", "adapter",
				"word_id", row.WordID,
				"error", err.Error(),
			)
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}

type languageModel struct {
	LanguageID string    `gorm:"column:language_id;primaryKey"`
	Name       string    `gorm:"column:name"`
	Code       string    `gorm:"column:code;uniqueIndex:idx_languages_code"`
	NativeName string    `gorm:"column:native_name"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (languageModel) TableName() string {
	return "languages"
}

func languageModelFromEntity(item entities.Language) languageModel {
	return languageModel{
		LanguageID: strings.TrimSpace(item.LanguageID),
		Name:       item.Name,
		Code:       item.Code,
		NativeName: item.NativeName,
		CreatedAt:  item.CreatedAt.UTC(),
		UpdatedAt:  item.UpdatedAt.UTC(),
	}
}

func (m languageModel) toEntity() entities.Language {
	return entities.Language{
		LanguageID: m.LanguageID,
		Name:       m.Name,
		Code:       m.Code,
		NativeName: m.NativeName,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

type wordModel struct {
	WordID         string         `gorm:"column:word_id;primaryKey"`
	Word           string         `gorm:"column:word;index:idx_words_word"`
	LanguageID     string         `gorm:"column:language_id;index:idx_words_language_id"`
	Meanings       datatypes.JSON `gorm:"column:meanings;type:jsonb"`
	CreatedBy      string         `gorm:"column:created_by"`
	LastModifiedBy string         `gorm:"column:last_modified_by"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
}

func (wordModel) TableName() string {
	return "words"
}

func wordModelFromEntity(item entities.Word) (wordModel, error) {
	meanings, err := encodeMeanings(item.Meanings)
	if err != nil {
		return wordModel{}, err
	}
	return wordModel{
		WordID:         strings.TrimSpace(item.WordID),
		Word:           item.Text,
		LanguageID:     item.LanguageID,
		Meanings:       meanings,
		CreatedBy:      item.CreatedBy,
		LastModifiedBy: item.LastModifiedBy,
		CreatedAt:      item.CreatedAt.UTC(),
		UpdatedAt:      item.UpdatedAt.UTC(),
	}, nil
}

func (m wordModel) toEntity() (entities.Word, error) {
	meanings := []entities.Meaning{}
	if len(m.Meanings) > 0 {
		if err := json.Unmarshal(m.Meanings, &meanings); err != nil {
			return entities.Word{}, fmt.Errorf("decode meanings of word %s: %w", m.WordID, err)
		}
	}
	return entities.Word{
		WordID:         m.WordID,
		Text:           m.Word,
		LanguageID:     m.LanguageID,
		Meanings:       meanings,
		CreatedBy:      m.CreatedBy,
		LastModifiedBy: m.LastModifiedBy,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}, nil
}

func encodeMeanings(meanings []entities.Meaning) (datatypes.JSON, error) {
	if meanings == nil {
		meanings = []entities.Meaning{}
	}
	raw, err := json.Marshal(meanings)
	if err != nil {
		return nil, fmt.Errorf("encode meanings: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
