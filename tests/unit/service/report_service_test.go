package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/port"
	"procura/internal/service"
	"procura/mocks"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newReportService(archive bool) (service.ReportService, *mocks.MockOrderRepo, *mocks.MockCompanyRepo, *mocks.MockReportRenderer, *mocks.MockObjectStorage) {
	orderRepo := new(mocks.MockOrderRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	renderer := new(mocks.MockReportRenderer)
	storage := new(mocks.MockObjectStorage)
	cfg := config.S3Config{
		ArchiveEnabled: archive,
		Bucket:         "test-bucket",
		PresignExpiry:  3600,
	}
	svc := service.NewReportService(orderRepo, companyRepo, renderer, storage, cfg)
	return svc, orderRepo, companyRepo, renderer, storage
}

func activeCompany(id uuid.UUID) *domain.Company {
	return &domain.Company{
		ID:       id,
		Name:     "Acme Tools",
		Slug:     "acme-tools",
		IsActive: true,
	}
}

func orderWithItem(supplierID uuid.UUID, supplierName string, productID uuid.UUID, productName, qty, price string) domain.Order {
	return domain.Order{
		ID:           uuid.New(),
		SupplierID:   supplierID,
		SupplierName: supplierName,
		Status:       domain.OrderStatusCompleted,
		Items: []domain.OrderItem{{
			ID:          uuid.New(),
			ProductID:   productID,
			ProductName: productName,
			Quantity:    dec(qty),
			UnitPrice:   dec(price),
		}},
	}
}

func TestReportService_Dashboard_SumsStoredTotals(t *testing.T) {
	svc, orderRepo, _, _, _ := newReportService(false)

	companyID := uuid.New()
	orders := []domain.Order{
		{ID: uuid.New(), Status: domain.OrderStatusCompleted, TotalAmount: dec("120.00")},
		{ID: uuid.New(), Status: domain.OrderStatusPending, TotalAmount: dec("30.00")},
		{ID: uuid.New(), Status: domain.OrderStatusCancelled, TotalAmount: dec("999.99")},
	}
	orderRepo.On("ListForPeriod", mock.Anything, companyID, mock.Anything, mock.Anything).Return(orders, nil)

	stats, err := svc.Dashboard(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.OrderCount)
	assert.True(t, stats.TotalSpend.Equal(dec("150.00")))
	assert.Equal(t, 1, stats.PendingCount)
	orderRepo.AssertExpectations(t)
}

func TestReportService_Dashboard_RepoError(t *testing.T) {
	svc, orderRepo, _, _, _ := newReportService(false)

	companyID := uuid.New()
	orderRepo.On("ListForPeriod", mock.Anything, companyID, mock.Anything, mock.Anything).
		Return(nil, errors.New("db error"))

	stats, err := svc.Dashboard(context.Background(), companyID)
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestReportService_PeriodReport_CompanyNotFound(t *testing.T) {
	svc, _, companyRepo, _, _ := newReportService(false)

	companyID := uuid.New()
	companyRepo.On("GetByID", mock.Anything, companyID).Return(nil, domain.ErrNotFound)

	report, err := svc.PeriodReport(context.Background(), companyID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, report)
}

func TestReportService_PeriodReport_CompanyInactive(t *testing.T) {
	svc, _, companyRepo, _, _ := newReportService(false)

	companyID := uuid.New()
	company := activeCompany(companyID)
	company.IsActive = false
	companyRepo.On("GetByID", mock.Anything, companyID).Return(company, nil)

	report, err := svc.PeriodReport(context.Background(), companyID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrCompanyInactive)
	assert.Nil(t, report)
}

func TestReportService_PeriodReport_InvertedRangeSkipsRepo(t *testing.T) {
	svc, orderRepo, companyRepo, _, _ := newReportService(false)

	companyID := uuid.New()
	companyRepo.On("GetByID", mock.Anything, companyID).Return(activeCompany(companyID), nil)

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	report, err := svc.PeriodReport(context.Background(), companyID, from, to)
	require.NoError(t, err)
	assert.Equal(t, 0, report.OrderCount)
	assert.True(t, report.TotalSpend.IsZero())
	assert.Empty(t, report.Suppliers)
	assert.Empty(t, report.TopProducts)
	orderRepo.AssertNotCalled(t, "ListWithItemsForPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_PeriodReport_ComputesFromItems(t *testing.T) {
	svc, orderRepo, companyRepo, _, _ := newReportService(false)

	companyID := uuid.New()
	supplierID := uuid.New()
	productID := uuid.New()
	companyRepo.On("GetByID", mock.Anything, companyID).Return(activeCompany(companyID), nil)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		orderWithItem(supplierID, "Steelworks", productID, "Steel plate", "2", "10.00"),
	}
	orderRepo.On("ListWithItemsForPeriod", mock.Anything, companyID, from, to).Return(orders, nil)

	report, err := svc.PeriodReport(context.Background(), companyID, from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, report.OrderCount)
	assert.True(t, report.TotalSpend.Equal(dec("20.00")))
	require.Len(t, report.Suppliers, 1)
	assert.Equal(t, "Steelworks", report.Suppliers[0].SupplierName)
	assert.True(t, report.Suppliers[0].Percentage.Equal(dec("100.00")))
	require.Len(t, report.TopProducts, 1)
	assert.True(t, report.TopProducts[0].TotalQuantity.Equal(dec("2")))
}

func TestReportService_RenderDocument_Success(t *testing.T) {
	svc, orderRepo, companyRepo, renderer, _ := newReportService(false)

	companyID := uuid.New()
	companyRepo.On("GetByID", mock.Anything, companyID).Return(activeCompany(companyID), nil)
	orderRepo.On("ListWithItemsForPeriod", mock.Anything, companyID, mock.Anything, mock.Anything).
		Return([]domain.Order{}, nil)
	renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("xlsx-bytes"), nil)
	renderer.On("ContentType").Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	renderer.On("FileExtension").Return("xlsx")

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	rendered, err := svc.RenderDocument(context.Background(), companyID, from, to)
	require.NoError(t, err)
	assert.Equal(t, "acme-tools_purchases_2025-06-01_2025-06-30.xlsx", rendered.FileName)
	assert.Equal(t, []byte("xlsx-bytes"), rendered.Data)
	assert.Empty(t, rendered.ArchiveURL)
}

func TestReportService_RenderDocument_RendererError(t *testing.T) {
	svc, orderRepo, companyRepo, renderer, _ := newReportService(false)

	companyID := uuid.New()
	companyRepo.On("GetByID", mock.Anything, companyID).Return(activeCompany(companyID), nil)
	orderRepo.On("ListWithItemsForPeriod", mock.Anything, companyID, mock.Anything, mock.Anything).
		Return([]domain.Order{}, nil)
	renderer.On("Render", mock.Anything, mock.Anything).Return(nil, errors.New("corrupt sheet"))

	rendered, err := svc.RenderDocument(context.Background(), companyID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
	assert.Nil(t, rendered)
}

func TestReportService_RenderDocument_Archives(t *testing.T) {
	svc, orderRepo, companyRepo, renderer, storage := newReportService(true)

	companyID := uuid.New()
	companyRepo.On("GetByID", mock.Anything, companyID).Return(activeCompany(companyID), nil)
	orderRepo.On("ListWithItemsForPeriod", mock.Anything, companyID, mock.Anything, mock.Anything).
		Return([]domain.Order{}, nil)
	renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("xlsx-bytes"), nil)
	renderer.On("ContentType").Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	renderer.On("FileExtension").Return("xlsx")

	expectedKey := "reports/" + companyID.String() + "/acme-tools_purchases_2025-06-01_2025-06-30.xlsx"
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-bucket" && in.Key == expectedKey
	})).Return(&port.UploadOutput{Location: "s3://test-bucket/" + expectedKey}, nil)
	storage.On("GetPresignedURL", mock.Anything, "test-bucket", expectedKey, int64(3600)).
		Return("https://example.test/presigned", nil)

	rendered, err := svc.RenderDocument(context.Background(), companyID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/presigned", rendered.ArchiveURL)
	storage.AssertExpectations(t)
}

func TestReportService_RenderDocument_ArchiveUploadError(t *testing.T) {
	svc, orderRepo, companyRepo, renderer, storage := newReportService(true)

	companyID := uuid.New()
	companyRepo.On("GetByID", mock.Anything, companyID).Return(activeCompany(companyID), nil)
	orderRepo.On("ListWithItemsForPeriod", mock.Anything, companyID, mock.Anything, mock.Anything).
		Return([]domain.Order{}, nil)
	renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("xlsx-bytes"), nil)
	renderer.On("ContentType").Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	renderer.On("FileExtension").Return("xlsx")
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket gone"))

	rendered, err := svc.RenderDocument(context.Background(), companyID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrArchiveFailed)
	assert.Nil(t, rendered)
}
