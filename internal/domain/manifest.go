package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManifestRow is one line of the front-desk stay manifest.
// It is a flat, denormalized view: one row per bound room, with reservation
// fields repeated for every room. A reservation with no room allocated yet
// yields one row with empty room fields.
type ManifestRow struct {
	// Reservation fields, repeated for every room of the reservation.
	ReservationID string
	GuestName     string
	GuestEmail    string
	CheckIn       string // DateLayout
	CheckOut      string // DateLayout
	Nights        int
	Guests        int
	Status        ReservationStatus
	PaymentStatus PaymentStatus
	TotalPrice    decimal.Decimal

	// Room fields. Empty for walk-ins awaiting allocation.
	RoomNumber string
	RoomType   RoomType

	ActualCheckIn  *time.Time
	ActualCheckOut *time.Time
}

// ManifestRows flattens r into its manifest lines.
func ManifestRows(r Reservation) []ManifestRow {
	base := ManifestRow{
		ReservationID:  r.ID.String(),
		GuestName:      r.Guest.Name,
		GuestEmail:     r.Guest.Email,
		CheckIn:        r.CheckIn.Format(DateLayout),
		CheckOut:       r.CheckOut.Format(DateLayout),
		Nights:         r.Nights(),
		Guests:         r.Guests.Total(),
		Status:         r.Status,
		PaymentStatus:  r.PaymentStatus,
		TotalPrice:     r.TotalPrice,
		ActualCheckIn:  r.ActualCheckIn,
		ActualCheckOut: r.ActualCheckOut,
	}
	if len(r.Rooms) == 0 {
		return []ManifestRow{base}
	}
	rows := make([]ManifestRow, 0, len(r.Rooms))
	for _, b := range r.Rooms {
		row := base
		row.RoomNumber = b.RoomNumber
		row.RoomType = b.RoomType
		rows = append(rows, row)
	}
	return rows
}
