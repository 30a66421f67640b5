package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"procura/internal/domain"
)

// OrderRepository supplies a company's purchase orders for a time range.
type OrderRepository interface {
	// ListForPeriod returns order rows without line items, for
	// dashboard-style aggregation over stored totals.
	ListForPeriod(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]domain.Order, error)

	// ListWithItemsForPeriod returns orders with their line items
	// populated, for period reports that recompute spend.
	ListWithItemsForPeriod(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]domain.Order, error)
}
