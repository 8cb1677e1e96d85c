package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/repo"
)

// RoomService manages the room catalog.
//
// A room's Status is a projection of current occupancy kept up to date by
// check-in and check-out. Future availability is always answered by
// AvailabilityService, never by this flag.
type RoomService struct {
	tx  repo.Transactor
	cfg Settings
}

// NewRoomService constructs a RoomService.
func NewRoomService(tx repo.Transactor, cfg Settings) *RoomService {
	return &RoomService{tx: tx, cfg: cfg}
}

// Create validates and persists a new room.
// Returns domain.ErrValidation for invalid input and domain.ErrConflict if
// the room number is already in use.
func (s *RoomService) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	room.Number = strings.TrimSpace(room.Number)
	if room.Status == "" {
		room.Status = domain.RoomAvailable
	}
	if err := validateRoom(room); err != nil {
		return domain.Room{}, err
	}

	var out domain.Room
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		var err error
		out, err = rs.Rooms.Create(ctx, room)
		return err
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.Room{}, fmt.Errorf("service.RoomService.Create: %w: room number %s is already in use", domain.ErrConflict, room.Number)
	}
	if err != nil {
		return domain.Room{}, fmt.Errorf("service.RoomService.Create: %w", err)
	}
	return out, nil
}

// GetByID returns a single room. Returns domain.ErrNotFound if absent.
func (s *RoomService) GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	var out domain.Room
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		var err error
		out, err = rs.Rooms.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Room{}, fmt.Errorf("service.RoomService.GetByID: %w", err)
	}
	return out, nil
}

// List returns one page of rooms ordered by number, plus the total count.
func (s *RoomService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Room, int64, error) {
	var (
		rooms []domain.Room
		total int64
	)
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		var err error
		rooms, total, err = rs.Rooms.ListPaged(ctx, p)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("service.RoomService.List: %w", err)
	}
	return rooms, total, nil
}

// GetStatus returns the current occupancy flag of a room.
func (s *RoomService) GetStatus(ctx context.Context, id uuid.UUID) (domain.RoomStatus, error) {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.RoomService.GetStatus: %w", err)
	}
	return room.Status, nil
}

// SetStatus overwrites the occupancy flag from outside the lifecycle, e.g.
// housekeeping. It is refused with domain.ErrConflict while an active
// reservation holds the room today, because the lifecycle owns the flag then.
func (s *RoomService) SetStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) (domain.Room, error) {
	if !status.Valid() {
		return domain.Room{}, fmt.Errorf("%w: unknown room status %q", domain.ErrValidation, status)
	}

	today := s.cfg.today()
	var out domain.Room
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		room, err := rs.Rooms.GetByID(ctx, id)
		if err != nil {
			return err
		}
		holding, err := findConflicts(ctx, rs.Reservations, []uuid.UUID{id}, today, today.AddDate(0, 0, 1), nil)
		if err != nil {
			return err
		}
		if len(holding) > 0 {
			return fmt.Errorf("%w: room %s is held by reservation %s today", domain.ErrConflict, room.Number, holding[0].ID)
		}
		out, err = rs.Rooms.SetStatus(ctx, id, status)
		return err
	})
	if err != nil {
		return domain.Room{}, fmt.Errorf("service.RoomService.SetStatus: %w", err)
	}
	return out, nil
}

func validateRoom(room domain.Room) error {
	if room.Number == "" {
		return fmt.Errorf("%w: number is required", domain.ErrValidation)
	}
	if !room.Type.Valid() {
		return fmt.Errorf("%w: unknown room type %q", domain.ErrValidation, room.Type)
	}
	if err := validateMoney("nightly_rate", room.NightlyRate); err != nil {
		return err
	}
	if room.NightlyRate.IsNegative() {
		return fmt.Errorf("%w: nightly_rate must not be negative", domain.ErrValidation)
	}
	if room.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", domain.ErrValidation)
	}
	if !room.Status.Valid() {
		return fmt.Errorf("%w: unknown room status %q", domain.ErrValidation, room.Status)
	}
	return nil
}
