package mocks

import (
	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
)

// MockReportRenderer is a mock implementation of port.ReportRenderer.
type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) Render(report *domain.PeriodReport, company *domain.Company) ([]byte, error) {
	args := m.Called(report, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportRenderer) ContentType() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockReportRenderer) FileExtension() string {
	args := m.Called()
	return args.String(0)
}
