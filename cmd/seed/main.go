package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/repository/postgres"
)

// Seeds a demo company with suppliers, products, and a month of orders
// so the dashboard and report endpoints have data to work with.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type seedItem struct {
	product   int
	quantity  string
	unitPrice string
}

type seedOrder struct {
	supplier int
	number   string
	status   domain.OrderStatus
	daysAgo  int
	items    []seedItem
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	companyID := uuid.New()
	_, err = db.ExecContext(ctx, `
		INSERT INTO companies (id, name, slug, tax_id, city, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (slug) DO NOTHING`,
		companyID, "Demo Manufacturing", "demo", "DE123456789", "Berlin")
	if err != nil {
		return fmt.Errorf("seed company: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO users (company_id, email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, email) DO NOTHING`,
		companyID, "admin@demo.test", string(hash), "Demo Admin", domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	supplierNames := []string{"Steelworks GmbH", "Nordic Fasteners", "Packline BV"}
	supplierIDs := make([]uuid.UUID, len(supplierNames))
	for i, name := range supplierNames {
		supplierIDs[i] = uuid.New()
		if _, err := db.ExecContext(ctx, `
			INSERT INTO suppliers (id, company_id, name) VALUES ($1, $2, $3)`,
			supplierIDs[i], companyID, name); err != nil {
			return fmt.Errorf("seed supplier %q: %w", name, err)
		}
	}

	productNames := []string{"Steel plate 3mm", "Hex bolt M8", "Cardboard box 60L", "Pallet wrap roll"}
	productIDs := make([]uuid.UUID, len(productNames))
	for i, name := range productNames {
		productIDs[i] = uuid.New()
		if _, err := db.ExecContext(ctx, `
			INSERT INTO products (id, company_id, name) VALUES ($1, $2, $3)`,
			productIDs[i], companyID, name); err != nil {
			return fmt.Errorf("seed product %q: %w", name, err)
		}
	}

	orders := []seedOrder{
		{0, "PO-1001", domain.OrderStatusCompleted, 25, []seedItem{
			{0, "12", "89.50"}, {1, "500", "0.14"}}},
		{0, "PO-1002", domain.OrderStatusConfirmed, 14, []seedItem{
			{0, "8", "89.50"}}},
		{1, "PO-1003", domain.OrderStatusSent, 10, []seedItem{
			{1, "2000", "0.12"}, {3, "10", "6.40"}}},
		{2, "PO-1004", domain.OrderStatusPending, 3, []seedItem{
			{2, "150", "1.85"}, {3, "20", "6.40"}}},
		{2, "PO-1005", domain.OrderStatusCancelled, 2, []seedItem{
			{2, "400", "1.85"}}},
		{1, "PO-1006", domain.OrderStatusDraft, 1, []seedItem{
			{1, "100", "0.12"}}},
	}

	for _, o := range orders {
		orderID := uuid.New()
		total := decimal.Zero
		for _, it := range o.items {
			qty := decimal.RequireFromString(it.quantity)
			price := decimal.RequireFromString(it.unitPrice)
			total = total.Add(qty.Mul(price))
		}
		createdAt := time.Now().UTC().AddDate(0, 0, -o.daysAgo)
		if _, err := db.ExecContext(ctx, `
			INSERT INTO orders (id, company_id, supplier_id, order_number, status, total_amount, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (company_id, order_number) DO NOTHING`,
			orderID, companyID, supplierIDs[o.supplier], o.number, o.status, total, createdAt); err != nil {
			return fmt.Errorf("seed order %s: %w", o.number, err)
		}
		for _, it := range o.items {
			if _, err := db.ExecContext(ctx, `
				INSERT INTO order_items (order_id, product_id, quantity, unit_price)
				VALUES ($1, $2, $3, $4)`,
				orderID, productIDs[it.product], it.quantity, it.unitPrice); err != nil {
				return fmt.Errorf("seed items for %s: %w", o.number, err)
			}
		}
	}

	log.Printf("seeded company %s with %d orders (login admin@demo.test / demo1234)", companyID, len(orders))
	return nil
}
