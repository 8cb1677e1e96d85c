package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate applies when no rate is configured.
var DefaultTaxRate = decimal.RequireFromString("0.10")

// Totals is the billable breakdown of a reservation.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals derives the bill totals of r. It reads only r and taxRate,
// so calling it twice on the same reservation yields the same result.
//
//	subtotal = rates × nights + Σ charges
//	tax      = subtotal × taxRate, rounded to cents
//	total    = subtotal + tax − discount
func ComputeTotals(r Reservation, taxRate decimal.Decimal) Totals {
	subtotal := r.RoomCharges().Add(r.ChargesTotal())
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Sub(r.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Totals{Subtotal: subtotal, Tax: tax, Discount: r.Discount, Total: total}
}

// BillItem is one line of a finalized bill.
type BillItem struct {
	Description string
	Category    string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// Bill is what the billing collaborator receives at check-out.
type Bill struct {
	ReservationID uuid.UUID
	Items         []BillItem
	Totals
	FinalizedAt time.Time
}

// NewBill itemizes r: one lodging line per bound room, then one line per charge.
func NewBill(r Reservation, taxRate decimal.Decimal, at time.Time) Bill {
	nights := r.Nights()
	items := make([]BillItem, 0, len(r.Rooms)+len(r.Charges))
	for _, b := range r.Rooms {
		items = append(items, BillItem{
			Description: fmt.Sprintf("Room %s (%s)", b.RoomNumber, b.RoomType),
			Category:    "lodging",
			Quantity:    nights,
			UnitPrice:   b.NightlyRate,
			Amount:      b.NightlyRate.Mul(decimal.NewFromInt(int64(nights))),
		})
	}
	for _, c := range r.Charges {
		items = append(items, BillItem{
			Description: c.Description,
			Category:    c.Category,
			Quantity:    c.Quantity,
			UnitPrice:   c.UnitPrice,
			Amount:      c.Amount,
		})
	}
	return Bill{
		ReservationID: r.ID,
		Items:         items,
		Totals:        ComputeTotals(r, taxRate),
		FinalizedAt:   at,
	}
}
