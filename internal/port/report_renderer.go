package port

import "procura/internal/domain"

// ReportRenderer turns a computed period report into an opaque binary
// document. Renderers must present every report field without
// recomputing any figure.
type ReportRenderer interface {
	Render(report *domain.PeriodReport, company *domain.Company) ([]byte, error)
	ContentType() string
	FileExtension() string
}
