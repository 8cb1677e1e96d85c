package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/repo"
)

// AvailabilityService answers whether rooms are free over a stay.
// It never writes.
type AvailabilityService struct {
	tx repo.Transactor
}

// NewAvailabilityService constructs an AvailabilityService.
func NewAvailabilityService(tx repo.Transactor) *AvailabilityService {
	return &AvailabilityService{tx: tx}
}

// FindConflicts returns the active reservations holding any of roomIDs on at
// least one night of [checkIn, checkOut). exclude, when non-nil, is ignored,
// so a reservation never conflicts with itself.
// Returns domain.ErrValidation unless checkIn < checkOut.
func (s *AvailabilityService) FindConflicts(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) ([]domain.Reservation, error) {
	if err := validateStay(checkIn, checkOut); err != nil {
		return nil, err
	}
	checkIn, checkOut = domain.DateOf(checkIn), domain.DateOf(checkOut)

	var conflicts []domain.Reservation
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		var err error
		conflicts, err = findConflicts(ctx, rs.Reservations, roomIDs, checkIn, checkOut, exclude)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.AvailabilityService.FindConflicts: %w", err)
	}
	return conflicts, nil
}

// CheckAvailableRooms returns the subset of roomIDs that no active
// reservation holds over [checkIn, checkOut), in request order. An empty
// roomIDs means every room in the catalog.
// Returns domain.ErrNotFound if a requested id is not in the catalog.
func (s *AvailabilityService) CheckAvailableRooms(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time) ([]uuid.UUID, error) {
	if err := validateStay(checkIn, checkOut); err != nil {
		return nil, err
	}
	checkIn, checkOut = domain.DateOf(checkIn), domain.DateOf(checkOut)

	available := []uuid.UUID{}
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		var rooms []domain.Room
		var err error
		if len(roomIDs) == 0 {
			rooms, err = rs.Rooms.List(ctx)
		} else {
			rooms, err = rs.Rooms.GetByIDs(ctx, roomIDs)
		}
		if err != nil {
			return err
		}
		ids := make([]uuid.UUID, len(rooms))
		for i, rm := range rooms {
			ids[i] = rm.ID
		}

		conflicts, err := findConflicts(ctx, rs.Reservations, ids, checkIn, checkOut, nil)
		if err != nil {
			return err
		}
		held := make(map[uuid.UUID]bool)
		for _, c := range conflicts {
			for _, b := range c.Rooms {
				held[b.RoomID] = true
			}
		}
		for _, id := range ids {
			if !held[id] {
				available = append(available, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service.AvailabilityService.CheckAvailableRooms: %w", err)
	}
	return available, nil
}
