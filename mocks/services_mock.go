package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/services"
)

type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) Generate(ctx context.Context, input services.ResumeInput) services.Outcome[string] {
	args := m.Called(ctx, input)
	return args.Get(0).(services.Outcome[string])
}

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) Search(ctx context.Context, profile models.UserProfile, query string) services.Outcome[[]models.JobPosting] {
	args := m.Called(ctx, profile, query)
	return args.Get(0).(services.Outcome[[]models.JobPosting])
}

func (m *MockJobService) Recommend(ctx context.Context, profile models.UserProfile, query string) services.Outcome[[]models.JobPosting] {
	args := m.Called(ctx, profile, query)
	return args.Get(0).(services.Outcome[[]models.JobPosting])
}

type MockFitService struct {
	mock.Mock
}

func (m *MockFitService) Analyze(ctx context.Context, profile models.UserProfile, company models.CompanyInfo) (services.Outcome[models.FitAnalysisResult], error) {
	args := m.Called(ctx, profile, company)
	return args.Get(0).(services.Outcome[models.FitAnalysisResult]), args.Error(1)
}

type MockPDFParser struct {
	mock.Mock
}

func (m *MockPDFParser) ExtractText(filePath string) (*services.PDFContent, error) {
	args := m.Called(filePath)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*services.PDFContent), args.Error(1)
}

func (m *MockPDFParser) ExtractTextFromBytes(data []byte) (*services.PDFContent, error) {
	args := m.Called(data)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*services.PDFContent), args.Error(1)
}
