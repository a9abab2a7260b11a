package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"alfredoptarigan/career-copilot/internal/models"
)

type MockGenerationRepository struct {
	mock.Mock
}

func (m *MockGenerationRepository) Create(ctx context.Context, entry *models.GenerationLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGenerationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.GenerationLog, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.GenerationLog), args.Error(1)
}

func (m *MockGenerationRepository) FindRecent(ctx context.Context, operation models.Operation, limit int) ([]models.GenerationLog, error) {
	args := m.Called(ctx, operation, limit)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.GenerationLog), args.Error(1)
}

func (m *MockGenerationRepository) CountByStatus(ctx context.Context, operation models.Operation) (map[models.GenerationStatus]int64, error) {
	args := m.Called(ctx, operation)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(map[models.GenerationStatus]int64), args.Error(1)
}
