package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CancellationPolicy decides whether a reservation may be cancelled and how
// much of its total price is refunded. Evaluate is a pure function of the
// reservation and the supplied clock reading.
//
// Pending and confirmed reservations follow the same windows.
type CancellationPolicy struct {
	// FullRefundAfter: strictly more notice than this refunds everything.
	FullRefundAfter time.Duration
	// MinNotice: at or below this much notice the reservation cannot be cancelled.
	MinNotice time.Duration
	// PartialRate is the refunded fraction between MinNotice and FullRefundAfter.
	PartialRate decimal.Decimal
	// Location places the check-in date at midnight of the hotel's zone.
	Location *time.Location
}

// DefaultCancellationPolicy returns the 48h / 24h / 50% policy.
func DefaultCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{
		FullRefundAfter: 48 * time.Hour,
		MinNotice:       24 * time.Hour,
		PartialRate:     decimal.RequireFromString("0.5"),
		Location:        time.UTC,
	}
}

// CancellationDecision is the outcome of CancellationPolicy.Evaluate.
type CancellationDecision struct {
	Cancellable       bool
	RefundAmount      decimal.Decimal
	HoursUntilCheckIn float64
}

// CheckInInstant returns midnight of r's check-in date in the policy zone.
func (p CancellationPolicy) CheckInInstant(r Reservation) time.Time {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := r.CheckIn.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Evaluate computes cancellability and refund for r at time now.
func (p CancellationPolicy) Evaluate(r Reservation, now time.Time) CancellationDecision {
	until := p.CheckInInstant(r).Sub(now)
	d := CancellationDecision{
		HoursUntilCheckIn: until.Hours(),
		RefundAmount:      decimal.Zero,
	}

	switch {
	case until > p.FullRefundAfter:
		d.RefundAmount = r.TotalPrice
	case until > p.MinNotice:
		d.RefundAmount = r.TotalPrice.Mul(p.PartialRate).Round(2)
	}

	d.Cancellable = CanApply(r.Status, TransitionCancel) && until > p.MinNotice
	if !d.Cancellable {
		d.RefundAmount = decimal.Zero
	}
	return d
}
