package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company represents an isolated tenant that owns suppliers, products,
// and purchase orders.
type Company struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Slug       string    `db:"slug" json:"slug"`
	TaxID      string    `db:"tax_id" json:"tax_id"`
	Address    string    `db:"address" json:"address"`
	City       string    `db:"city" json:"city"`
	PostalCode string    `db:"postal_code" json:"postal_code"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a company.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CompanyID    uuid.UUID `db:"company_id" json:"company_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Order represents a purchase order placed by a company with a supplier.
// TotalAmount is the stored total; period reports recompute spend from
// line items so figures stay correct even when the stored total is stale.
type Order struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	CompanyID    uuid.UUID       `db:"company_id" json:"company_id"`
	SupplierID   uuid.UUID       `db:"supplier_id" json:"supplier_id"`
	SupplierName string          `db:"supplier_name" json:"supplier_name"`
	OrderNumber  string          `db:"order_number" json:"order_number"`
	Status       OrderStatus     `db:"status" json:"status"`
	TotalAmount  decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	DeliveredAt  *time.Time      `db:"delivered_at" json:"delivered_at"`

	Items []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem is a single line of a purchase order.
type OrderItem struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	OrderID     uuid.UUID       `db:"order_id" json:"order_id"`
	ProductID   uuid.UUID       `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
}

// Subtotal returns quantity times unit price, unrounded.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// DashboardStats holds order-volume figures for the current calendar month.
type DashboardStats struct {
	OrderCount   int             `json:"order_count"`
	TotalSpend   decimal.Decimal `json:"total_spend"`
	PendingCount int             `json:"pending_count"`
	PeriodStart  time.Time       `json:"period_start"`
	PeriodEnd    time.Time       `json:"period_end"`
}

// SupplierSpend is one row of the per-supplier spend breakdown.
// Spend and Percentage are rounded to 2 decimals; Percentage is zero
// when the period total is zero.
type SupplierSpend struct {
	SupplierID   uuid.UUID       `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	OrderCount   int             `json:"order_count"`
	Spend        decimal.Decimal `json:"spend"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// ProductRanking is one entry of the best-selling-product ranking.
type ProductRanking struct {
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	Spend         decimal.Decimal `json:"spend"`
}

// PeriodReport aggregates a company's purchase activity over a period.
// All values are derived, read-only, and recomputed on every request.
type PeriodReport struct {
	CompanyID    uuid.UUID        `json:"company_id"`
	PeriodStart  time.Time        `json:"period_start"`
	PeriodEnd    time.Time        `json:"period_end"`
	OrderCount   int              `json:"order_count"`
	TotalSpend   decimal.Decimal  `json:"total_spend"`
	AverageSpend decimal.Decimal  `json:"average_spend"`
	Suppliers    []SupplierSpend  `json:"suppliers"`
	TopProducts  []ProductRanking `json:"top_products"`
}
