package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
	"procura/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Dashboard(ctx context.Context, companyID uuid.UUID) (*domain.DashboardStats, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockReportService) PeriodReport(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*domain.PeriodReport, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodReport), args.Error(1)
}

func (m *MockReportService) RenderDocument(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*service.RenderedReport, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedReport), args.Error(1)
}
