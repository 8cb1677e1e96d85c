// Package domain contains the core data types and pure business rules of the
// hotel reservation engine: the reservation state machine, stay overlap,
// billing totals and the cancellation policy.
// Nothing here touches the database or the network.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for check-in and check-out.
const DateLayout = "2006-01-02"

// PaymentStatus is the payment axis of a reservation. It is written only by
// the payment collaborator and is independent of ReservationStatus.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Valid reports whether p is a known payment status.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentUnpaid, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// GuestInfo is the guest snapshot copied at booking time.
// It is never re-read from the guest directory afterwards.
type GuestInfo struct {
	Name  string
	Email string
	Phone string
}

// GuestCount is the party size of a stay.
type GuestCount struct {
	Adults   int
	Children int
}

// Total returns adults plus children.
func (g GuestCount) Total() int { return g.Adults + g.Children }

// RoomBinding ties a physical room to a reservation. Number, type and rate
// are snapshots taken when the room was bound.
type RoomBinding struct {
	RoomID      uuid.UUID
	RoomNumber  string
	RoomType    RoomType
	NightlyRate decimal.Decimal
	BoundAt     time.Time
}

// Charge is an incidental item posted to a reservation during the stay.
type Charge struct {
	ID          uuid.UUID
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
	Category    string
	Author      string
	CreatedAt   time.Time
}

// Reservation is a guest's claim on one or more rooms for [CheckIn, CheckOut).
type Reservation struct {
	ID    uuid.UUID
	Guest GuestInfo
	Rooms []RoomBinding
	// PrimaryRoomID mirrors the legacy single-room reference. It is set by
	// the first binding and never changed afterwards.
	PrimaryRoomID *uuid.UUID

	CheckIn  time.Time
	CheckOut time.Time

	Status        ReservationStatus
	PaymentStatus PaymentStatus
	PaymentMethod string
	PaidAmount    decimal.Decimal

	Guests          GuestCount
	SpecialRequests string

	Charges    []Charge
	Discount   decimal.Decimal
	TotalPrice decimal.Decimal

	RefundAmount       decimal.Decimal
	CancellationReason string

	ActualCheckIn  *time.Time
	ActualCheckOut *time.Time
	CancelledAt    *time.Time

	// Version is bumped by every successful update and is the token for
	// conditional writes.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReservation carries the input of a booking request.
type NewReservation struct {
	// ID is optional. When set it acts as an idempotency key: a retried
	// request with the same ID returns the reservation created first.
	ID              *uuid.UUID
	Guest           GuestInfo
	RoomIDs         []uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          GuestCount
	SpecialRequests string
	Discount        decimal.Decimal
}

// NewCharge carries the input of add-charge.
type NewCharge struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Category    string
	Author      string
}

// PaymentUpdate carries the input of the payment collaborator.
type PaymentUpdate struct {
	Status     PaymentStatus
	Method     string
	PaidAmount decimal.Decimal
}

// Nights returns the number of nights in the stay.
func (r Reservation) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

// HasRoom reports whether roomID is already bound to r.
func (r Reservation) HasRoom(roomID uuid.UUID) bool {
	for _, b := range r.Rooms {
		if b.RoomID == roomID {
			return true
		}
	}
	return false
}

// RoomIDs returns the ids of every bound room.
func (r Reservation) RoomIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.Rooms))
	for i, b := range r.Rooms {
		ids[i] = b.RoomID
	}
	return ids
}

// Bind appends a room binding and sets the primary room on the first call.
func (r *Reservation) Bind(room Room, at time.Time) {
	r.Rooms = append(r.Rooms, RoomBinding{
		RoomID:      room.ID,
		RoomNumber:  room.Number,
		RoomType:    room.Type,
		NightlyRate: room.NightlyRate,
		BoundAt:     at,
	})
	if r.PrimaryRoomID == nil {
		id := room.ID
		r.PrimaryRoomID = &id
	}
}

// RoomCharges returns the lodging part of the price: every bound room's
// nightly rate times the number of nights.
func (r Reservation) RoomCharges() decimal.Decimal {
	nights := decimal.NewFromInt(int64(r.Nights()))
	sum := decimal.Zero
	for _, b := range r.Rooms {
		sum = sum.Add(b.NightlyRate.Mul(nights))
	}
	return sum
}

// ChargesTotal returns the sum of all custom charges.
func (r Reservation) ChargesTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range r.Charges {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// Recalculate derives TotalPrice from rooms, charges and discount.
// It must run after every change to any of them.
func (r *Reservation) Recalculate() {
	total := r.RoomCharges().Add(r.ChargesTotal()).Sub(r.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	r.TotalPrice = total
}

// NightsBetween counts calendar nights in [in, out).
func NightsBetween(in, out time.Time) int {
	a := DateOf(in)
	b := DateOf(out)
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// DateOf truncates t to midnight UTC of its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the half-open stays [aIn, aOut) and [bIn, bOut)
// share at least one night. A check-out on the same day as another check-in
// is not an overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}
