package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"procura/internal/domain"
	"procura/internal/port"
)

type orderRepo struct {
	db *sqlx.DB
}

// NewOrderRepo creates a new PostgreSQL-backed OrderRepository.
func NewOrderRepo(db *sqlx.DB) port.OrderRepository {
	return &orderRepo{db: db}
}

const orderSelect = `SELECT
	o.id, o.company_id, o.supplier_id, s.name AS supplier_name,
	o.order_number, o.status, o.total_amount, o.created_at, o.delivered_at
FROM orders o
INNER JOIN suppliers s ON s.id = o.supplier_id
WHERE o.company_id = $1 AND o.created_at >= $2 AND o.created_at <= $3
ORDER BY o.created_at ASC, o.id ASC`

func (r *orderRepo) ListForPeriod(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.SelectContext(ctx, &orders, orderSelect, companyID, from, to); err != nil {
		return nil, fmt.Errorf("orderRepo.ListForPeriod: %w", err)
	}
	return orders, nil
}

func (r *orderRepo) ListWithItemsForPeriod(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]domain.Order, error) {
	orders, err := r.ListForPeriod(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uuid.UUID, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID
		index[o.ID] = i
	}

	query, args, err := sqlx.In(`SELECT
		i.id, i.order_id, i.product_id, p.name AS product_name,
		i.quantity, i.unit_price
	FROM order_items i
	INNER JOIN products p ON p.id = i.product_id
	WHERE i.order_id IN (?)
	ORDER BY i.order_id, i.id`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("orderRepo.ListWithItemsForPeriod in-clause: %w", err)
	}
	query = r.db.Rebind(query)

	var items []domain.OrderItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("orderRepo.ListWithItemsForPeriod items: %w", err)
	}

	for _, item := range items {
		i, ok := index[item.OrderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}
	return orders, nil
}
