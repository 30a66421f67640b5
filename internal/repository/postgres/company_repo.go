package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"procura/internal/domain"
	"procura/internal/port"
)

type companyRepo struct {
	db *sqlx.DB
}

// NewCompanyRepo creates a new PostgreSQL-backed CompanyRepository.
func NewCompanyRepo(db *sqlx.DB) port.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, companyID uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	err := r.db.GetContext(ctx, &company,
		"SELECT * FROM companies WHERE id = $1", companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("companyRepo.GetByID: %w", err)
	}
	return &company, nil
}

func (r *companyRepo) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	var company domain.Company
	err := r.db.GetContext(ctx, &company,
		"SELECT * FROM companies WHERE slug = $1", slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("companyRepo.GetBySlug: %w", err)
	}
	return &company, nil
}
