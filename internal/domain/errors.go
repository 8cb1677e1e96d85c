package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing guest email, check-out before check-in).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a room/date combination is already held by an
// active reservation. Repos return it bare when the exclusion constraint fires;
// services wrap it in a *ConflictError carrying the rooms and dates.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrInvalidState is the sentinel behind every *StateError.
var ErrInvalidState = errors.New("invalid state transition")

// ErrStaleWrite is returned by a conditional reservation update when the
// stored version no longer matches the version that was read.
// Services retry the whole read-validate-write unit when they see it.
var ErrStaleWrite = errors.New("stale write")

// ErrDuplicate is returned by ReservationRepo.Create when a reservation with
// the same id already exists (an idempotent retry).
var ErrDuplicate = errors.New("duplicate")

// StateError reports a transition attempted from a status that does not permit it.
type StateError struct {
	Transition Transition
	Current    ReservationStatus
	// Reason is set when the status is right but another guard failed,
	// e.g. "payment status is unpaid".
	Reason string
}

func (e *StateError) Error() string {
	msg := fmt.Sprintf("cannot %s reservation in status %s", e.Transition, e.Current)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// ConflictError names the rooms and stay that could not be booked.
type ConflictError struct {
	RoomNumbers []string
	CheckIn     time.Time
	CheckOut    time.Time
	// With lists the active reservations holding the rooms, when known.
	With []uuid.UUID
}

func (e *ConflictError) Error() string {
	noun := "room"
	if len(e.RoomNumbers) > 1 {
		noun = "rooms"
	}
	return fmt.Sprintf("%s %s is not available for %s to %s",
		noun, strings.Join(e.RoomNumbers, ", "),
		e.CheckIn.Format(DateLayout), e.CheckOut.Format(DateLayout))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
