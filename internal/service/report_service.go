package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/port"
	"procura/internal/report"
)

// RenderedReport is a rendered period report ready for download.
type RenderedReport struct {
	FileName    string
	ContentType string
	Data        []byte
	ArchiveURL  string
}

// ReportService computes order statistics and period reports for a
// company. Every entry point takes the company ID explicitly; the
// service never infers the caller from ambient state.
type ReportService interface {
	// Dashboard aggregates the current calendar month from stored
	// order totals.
	Dashboard(ctx context.Context, companyID uuid.UUID) (*domain.DashboardStats, error)

	// PeriodReport aggregates the given range, recomputing spend from
	// line items. An inverted range yields a zero-valued report.
	PeriodReport(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*domain.PeriodReport, error)

	// RenderDocument computes the period report and renders it as a
	// downloadable document, optionally archiving it to object storage.
	RenderDocument(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*RenderedReport, error)
}

type reportService struct {
	orderRepo   port.OrderRepository
	companyRepo port.CompanyRepository
	renderer    port.ReportRenderer
	storage     port.ObjectStorage
	s3cfg       config.S3Config
}

// NewReportService creates a new ReportService implementation. storage
// may be nil when report archiving is disabled.
func NewReportService(
	orderRepo port.OrderRepository,
	companyRepo port.CompanyRepository,
	renderer port.ReportRenderer,
	storage port.ObjectStorage,
	s3cfg config.S3Config,
) ReportService {
	return &reportService{
		orderRepo:   orderRepo,
		companyRepo: companyRepo,
		renderer:    renderer,
		storage:     storage,
		s3cfg:       s3cfg,
	}
}

func (s *reportService) Dashboard(ctx context.Context, companyID uuid.UUID) (*domain.DashboardStats, error) {
	periodStart, periodEnd := report.MonthBounds(time.Now().UTC())

	orders, err := s.orderRepo.ListForPeriod(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("reportService.Dashboard: %w", err)
	}

	stats := report.BuildDashboard(orders, periodStart, periodEnd)
	return &stats, nil
}

func (s *reportService) PeriodReport(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*domain.PeriodReport, error) {
	rep, _, err := s.periodReport(ctx, companyID, from, to)
	return rep, err
}

// periodReport resolves the company once and returns it alongside the
// computed report so RenderDocument can reuse it.
func (s *reportService) periodReport(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*domain.PeriodReport, *domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	if !company.IsActive {
		return nil, nil, domain.ErrCompanyInactive
	}

	// An inverted range is documented behavior, not a fault: the
	// report is simply empty.
	var orders []domain.Order
	if !from.After(to) {
		orders, err = s.orderRepo.ListWithItemsForPeriod(ctx, companyID, from, to)
		if err != nil {
			return nil, nil, fmt.Errorf("reportService.PeriodReport: %w", err)
		}
	}

	rep := report.BuildPeriodReport(companyID, orders, from, to)
	return &rep, company, nil
}

func (s *reportService) RenderDocument(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*RenderedReport, error) {
	rep, company, err := s.periodReport(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(rep, company)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	rendered := &RenderedReport{
		FileName: fmt.Sprintf("%s_purchases_%s_%s.%s",
			company.Slug,
			from.Format("2006-01-02"),
			to.Format("2006-01-02"),
			s.renderer.FileExtension()),
		ContentType: s.renderer.ContentType(),
		Data:        data,
	}

	if s.s3cfg.ArchiveEnabled && s.storage != nil {
		key := fmt.Sprintf("reports/%s/%s", companyID, rendered.FileName)
		if _, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.s3cfg.Bucket,
			Key:         key,
			Body:        bytes.NewReader(data),
			ContentType: rendered.ContentType,
			Size:        int64(len(data)),
		}); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
		}
		url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, key, s.s3cfg.PresignExpiry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
		}
		rendered.ArchiveURL = url
	}

	return rendered, nil
}
