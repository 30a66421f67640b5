package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"procura/internal/domain"
)

// TopProductLimit caps the best-selling-product ranking.
const TopProductLimit = 10

var hundred = decimal.NewFromInt(100)

// round2 rounds to 2 decimal places. shopspring's Round rounds halves
// away from zero, which is round-half-up for the non-negative amounts
// this domain admits.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// BuildDashboard computes order-volume figures over the given orders.
// Spend is summed from the stored order totals; line items are not
// required. Inactive orders are excluded.
func BuildDashboard(orders []domain.Order, periodStart, periodEnd time.Time) domain.DashboardStats {
	active := FilterActive(orders)

	totalSpend := decimal.Zero
	pending := 0
	for _, o := range active {
		totalSpend = totalSpend.Add(o.TotalAmount)
		if o.Status == domain.OrderStatusPending {
			pending++
		}
	}

	return domain.DashboardStats{
		OrderCount:   len(active),
		TotalSpend:   round2(totalSpend),
		PendingCount: pending,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
	}
}

// supplierAccum accumulates one supplier group during aggregation.
type supplierAccum struct {
	id         uuid.UUID
	name       string
	orderCount int
	spend      decimal.Decimal
}

// productAccum accumulates one product group during aggregation.
type productAccum struct {
	id       uuid.UUID
	name     string
	quantity decimal.Decimal
	spend    decimal.Decimal
}

// BuildPeriodReport aggregates the given orders into a PeriodReport.
// Spend is recomputed from line items (quantity times unit price), not
// the stored order totals, so the report reflects current pricing data.
//
// Suppliers are sorted by spend descending, supplier ID ascending on
// ties. Products are ranked by total quantity descending, product ID
// ascending on ties, and truncated to TopProductLimit. Division by a
// zero order count or zero total spend yields zero, never an error.
func BuildPeriodReport(companyID uuid.UUID, orders []domain.Order, periodStart, periodEnd time.Time) domain.PeriodReport {
	active := FilterActive(orders)

	totalSpend := decimal.Zero
	suppliers := make(map[uuid.UUID]*supplierAccum)
	products := make(map[uuid.UUID]*productAccum)

	for _, o := range active {
		orderSpend := decimal.Zero
		for _, item := range o.Items {
			sub := item.Subtotal()
			orderSpend = orderSpend.Add(sub)

			p, ok := products[item.ProductID]
			if !ok {
				p = &productAccum{
					id:       item.ProductID,
					name:     item.ProductName,
					quantity: decimal.Zero,
					spend:    decimal.Zero,
				}
				products[item.ProductID] = p
			}
			p.quantity = p.quantity.Add(item.Quantity)
			p.spend = p.spend.Add(sub)
		}
		totalSpend = totalSpend.Add(orderSpend)

		s, ok := suppliers[o.SupplierID]
		if !ok {
			s = &supplierAccum{id: o.SupplierID, name: o.SupplierName, spend: decimal.Zero}
			suppliers[o.SupplierID] = s
		}
		s.orderCount++
		s.spend = s.spend.Add(orderSpend)
	}

	report := domain.PeriodReport{
		CompanyID:    companyID,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		OrderCount:   len(active),
		TotalSpend:   round2(totalSpend),
		AverageSpend: decimal.Zero,
		Suppliers:    make([]domain.SupplierSpend, 0, len(suppliers)),
		TopProducts:  make([]domain.ProductRanking, 0, len(products)),
	}

	if report.OrderCount > 0 {
		report.AverageSpend = round2(totalSpend.Div(decimal.NewFromInt(int64(report.OrderCount))))
	}

	for _, s := range suppliers {
		pct := decimal.Zero
		if totalSpend.IsPositive() {
			pct = round2(s.spend.Mul(hundred).Div(totalSpend))
		}
		report.Suppliers = append(report.Suppliers, domain.SupplierSpend{
			SupplierID:   s.id,
			SupplierName: s.name,
			OrderCount:   s.orderCount,
			Spend:        round2(s.spend),
			Percentage:   pct,
		})
	}
	sort.Slice(report.Suppliers, func(i, j int) bool {
		a, b := report.Suppliers[i], report.Suppliers[j]
		if !a.Spend.Equal(b.Spend) {
			return a.Spend.GreaterThan(b.Spend)
		}
		return a.SupplierID.String() < b.SupplierID.String()
	})

	for _, p := range products {
		report.TopProducts = append(report.TopProducts, domain.ProductRanking{
			ProductID:     p.id,
			ProductName:   p.name,
			TotalQuantity: p.quantity,
			Spend:         round2(p.spend),
		})
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		a, b := report.TopProducts[i], report.TopProducts[j]
		if !a.TotalQuantity.Equal(b.TotalQuantity) {
			return a.TotalQuantity.GreaterThan(b.TotalQuantity)
		}
		return a.ProductID.String() < b.ProductID.String()
	})
	if len(report.TopProducts) > TopProductLimit {
		report.TopProducts = report.TopProducts[:TopProductLimit]
	}

	return report
}
