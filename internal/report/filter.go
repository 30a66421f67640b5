package report

import "procura/internal/domain"

// FilterActive returns the subset of orders whose status counts toward
// spend statistics. The input slice is never mutated and encounter
// order is preserved.
func FilterActive(orders []domain.Order) []domain.Order {
	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status.CountsTowardSpend() {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
