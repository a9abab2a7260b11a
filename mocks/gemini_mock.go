package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/career-copilot/internal/services"
)

type MockGeminiService struct {
	mock.Mock
}

func (m *MockGeminiService) Generate(ctx context.Context, req services.GenerationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGeminiService) Model() string {
	args := m.Called()
	return args.String(0)
}
