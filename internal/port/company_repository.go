package port

import (
	"context"

	"github.com/google/uuid"

	"procura/internal/domain"
)

// CompanyRepository provides access to companies (tenants).
type CompanyRepository interface {
	GetByID(ctx context.Context, companyID uuid.UUID) (*domain.Company, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Company, error)
}
