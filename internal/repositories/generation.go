package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/career-copilot/internal/models"
)

var ErrGenerationNotFound = errors.New("generation log not found")

type GenerationRepository interface {
	Create(ctx context.Context, entry *models.GenerationLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.GenerationLog, error)
	FindRecent(ctx context.Context, operation models.Operation, limit int) ([]models.GenerationLog, error)
	CountByStatus(ctx context.Context, operation models.Operation) (map[models.GenerationStatus]int64, error)
}

type generationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

func (r *generationRepository) Create(ctx context.Context, entry *models.GenerationLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create generation log: %w", err)
	}
	return nil
}

func (r *generationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.GenerationLog, error) {
	var entry models.GenerationLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenerationNotFound
		}
		return nil, fmt.Errorf("failed to find generation log: %w", err)
	}
	return &entry, nil
}

// FindRecent returns the newest entries first. An empty operation matches all.
func (r *generationRepository) FindRecent(ctx context.Context, operation models.Operation, limit int) ([]models.GenerationLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if operation != "" {
		query = query.Where("operation = ?", operation)
	}

	var entries []models.GenerationLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to find recent generation logs: %w", err)
	}
	return entries, nil
}

func (r *generationRepository) CountByStatus(ctx context.Context, operation models.Operation) (map[models.GenerationStatus]int64, error) {
	var rows []struct {
		Status models.GenerationStatus
		Total  int64
	}

	query := r.db.WithContext(ctx).
		Model(&models.GenerationLog{}).
		Select("status, count(*) as total").
		Group("status")
	if operation != "" {
		query = query.Where("operation = ?", operation)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count generation logs: %w", err)
	}

	counts := make(map[models.GenerationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
