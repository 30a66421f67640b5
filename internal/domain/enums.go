package domain

// OrderStatus represents the lifecycle state of a purchase order.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ActiveOrderStatuses are the states that count toward spend and volume
// statistics. Draft, rejected, and cancelled orders contribute to no
// downstream count, sum, or ranking.
var ActiveOrderStatuses = map[OrderStatus]bool{
	OrderStatusPending:   true,
	OrderStatusSent:      true,
	OrderStatusConfirmed: true,
	OrderStatusCompleted: true,
}

// CountsTowardSpend reports whether orders in this status are included
// in aggregated statistics.
func (s OrderStatus) CountsTowardSpend() bool {
	return ActiveOrderStatuses[s]
}

// UserRole defines the role hierarchy within a company.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)
