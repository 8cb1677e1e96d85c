package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomType is the sellable category of a room.
type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomTwin   RoomType = "twin"
	RoomSuite  RoomType = "suite"
	RoomDeluxe RoomType = "deluxe"
	RoomFamily RoomType = "family"
)

// Valid reports whether t is one of the known room types.
func (t RoomType) Valid() bool {
	switch t {
	case RoomSingle, RoomDouble, RoomTwin, RoomSuite, RoomDeluxe, RoomFamily:
		return true
	}
	return false
}

// RoomStatus is the front-desk view of a room's current occupancy.
//
// It is a projection maintained by check-in and check-out. Whether a room is
// free on a given date is answered by the reservation interval query, never
// by this flag.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomReserved  RoomStatus = "reserved"
	RoomOccupied  RoomStatus = "occupied"
)

// Valid reports whether s is one of the known room statuses.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomReserved, RoomOccupied:
		return true
	}
	return false
}

// Room is a single physical room in the property inventory.
type Room struct {
	ID          uuid.UUID
	Number      string
	Type        RoomType
	NightlyRate decimal.Decimal
	Capacity    int
	Status      RoomStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
