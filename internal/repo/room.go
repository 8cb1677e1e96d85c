package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
)

// RoomRepo defines the persistence operations for the room catalog.
type RoomRepo interface {
	// Create inserts a room and returns the persisted record.
	// Returns domain.ErrDuplicate if the room number is taken.
	Create(ctx context.Context, room domain.Room) (domain.Room, error)

	// GetByID retrieves a single room. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error)

	// GetByIDs returns the rooms in the order of ids.
	// Returns domain.ErrNotFound naming the first id that does not resolve.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Room, error)

	// List returns every room ordered by number.
	List(ctx context.Context) ([]domain.Room, error)

	// ListPaged returns one page of rooms ordered by number and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Room, int64, error)

	// SetStatus overwrites the status flag and returns the updated room.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) (domain.Room, error)
}

// pgRoomRepo is the Postgres implementation of RoomRepo.
type pgRoomRepo struct {
	db db
}

// NewRoomRepo constructs a RoomRepo backed by the provided db connection.
func NewRoomRepo(db db) RoomRepo {
	return &pgRoomRepo{db: db}
}

const roomColumns = `id, number, room_type, nightly_rate_cents, capacity, status, created_at, updated_at`

func (r *pgRoomRepo) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	const q = `
		INSERT INTO rooms (number, room_type, nightly_rate_cents, capacity, status)
		VALUES (@number, @room_type, @rate, @capacity, @status)
		RETURNING ` + roomColumns

	status := room.Status
	if status == "" {
		status = domain.RoomAvailable
	}
	args := pgx.NamedArgs{
		"number":    room.Number,
		"room_type": string(room.Type),
		"rate":      toCents(room.NightlyRate),
		"capacity":  room.Capacity,
		"status":    string(status),
	}

	result, err := scanRoom(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Room{}, fmt.Errorf("repo.RoomRepo.Create: %w", translate(err))
	}
	return result, nil
}

func (r *pgRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = @id`

	result, err := scanRoom(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Room{}, fmt.Errorf("repo.RoomRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgRoomRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Room, error) {
	if len(ids) == 0 {
		return []domain.Room{}, nil
	}
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ANY(@ids)`

	found, err := r.queryRooms(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.GetByIDs: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Room, len(found))
	for _, rm := range found {
		byID[rm.ID] = rm
	}
	out := make([]domain.Room, 0, len(ids))
	for _, id := range ids {
		rm, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("repo.RoomRepo.GetByIDs: room %s: %w", id, domain.ErrNotFound)
		}
		out = append(out, rm)
	}
	return out, nil
}

func (r *pgRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY number`

	rooms, err := r.queryRooms(ctx, q, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("repo.RoomRepo.List: %w", err)
	}
	return rooms, nil
}

func (r *pgRoomRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Room, int64, error) {
	const countQ = `SELECT count(*) FROM rooms`
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY number LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.RoomRepo.ListPaged: count: %w", err)
	}

	rooms, err := r.queryRooms(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.RoomRepo.ListPaged: %w", err)
	}
	return rooms, total, nil
}

func (r *pgRoomRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) (domain.Room, error) {
	const q = `
		UPDATE rooms
		SET status = @status, updated_at = now()
		WHERE id = @id
		RETURNING ` + roomColumns

	result, err := scanRoom(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)}))
	if err != nil {
		return domain.Room{}, fmt.Errorf("repo.RoomRepo.SetStatus: %w", err)
	}
	return result, nil
}

func (r *pgRoomRepo) queryRooms(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []domain.Room{}
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return rooms, nil
}

// scanRoom maps a single database row into a domain.Room.
func scanRoom(s scanner) (domain.Room, error) {
	var (
		rm        domain.Room
		id        pgtype.UUID
		roomType  string
		status    string
		rateCents int64
	)

	err := s.Scan(&id, &rm.Number, &roomType, &rateCents, &rm.Capacity, &status, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Room{}, domain.ErrNotFound
		}
		return domain.Room{}, err
	}

	rm.ID = uuid.UUID(id.Bytes)
	rm.Type = domain.RoomType(roomType)
	rm.Status = domain.RoomStatus(status)
	rm.NightlyRate = fromCents(rateCents)
	return rm, nil
}
