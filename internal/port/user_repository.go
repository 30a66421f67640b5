package port

import (
	"context"

	"github.com/google/uuid"

	"procura/internal/domain"
)

// UserRepository provides access to users within a company.
type UserRepository interface {
	GetByID(ctx context.Context, companyID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*domain.User, error)
}
