package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
)

// ReservationRepo defines the persistence operations for reservations,
// their room bindings and their charges.
//
// Writes that can race are guarded in the database itself: room bindings by
// the reservation_rooms_no_overlap exclusion constraint, reservation rows by
// the version column.
type ReservationRepo interface {
	// Create inserts the reservation and one binding per entry in res.Rooms.
	// Returns domain.ErrConflict if a binding overlaps an active binding of
	// the same room, and domain.ErrDuplicate if the id already exists.
	Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error)

	// GetByID loads a reservation with its bindings and charges.
	// Returns domain.ErrNotFound if no reservation with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error)

	// FindOverlapping returns the active reservations holding any of roomIDs
	// on at least one night of [checkIn, checkOut). exclude, when non-nil,
	// is left out of the result.
	FindOverlapping(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) ([]domain.Reservation, error)

	// ListStays returns every reservation, whatever its status, whose stay
	// shares at least one night with [from, to), ordered by check-in date
	// then guest name. Bindings are loaded; charges are not.
	ListStays(ctx context.Context, from, to time.Time) ([]domain.Reservation, error)

	// Update writes the mutable scalar fields of res if and only if the stored
	// version still equals res.Version, and returns res with the new version.
	// Returns domain.ErrStaleWrite on a version mismatch and domain.ErrNotFound
	// if the reservation does not exist.
	Update(ctx context.Context, res domain.Reservation) (domain.Reservation, error)

	// AddRoom persists binding b for res's stay.
	// Returns domain.ErrConflict if the room is held over an intersecting stay.
	AddRoom(ctx context.Context, res domain.Reservation, b domain.RoomBinding) error

	// ReleaseRooms marks every binding of the reservation inactive so it no
	// longer blocks other bookings.
	ReleaseRooms(ctx context.Context, id uuid.UUID) error

	// AddCharge appends a charge and returns it with its id and timestamp.
	AddCharge(ctx context.Context, id uuid.UUID, c domain.Charge) (domain.Charge, error)
}

// pgReservationRepo is the Postgres implementation of ReservationRepo.
type pgReservationRepo struct {
	db db
}

// NewReservationRepo constructs a ReservationRepo backed by the provided db connection.
// In production pass a pgx.Tx from Store.InTx; in tests pass a pgx.Tx for rollback isolation.
func NewReservationRepo(db db) ReservationRepo {
	return &pgReservationRepo{db: db}
}

const reservationColumns = `id, guest_name, guest_email, guest_phone, primary_room_id,
	check_in, check_out, status, payment_status, payment_method, paid_amount_cents,
	adults, children, special_requests, discount_cents, total_price_cents,
	refund_amount_cents, cancellation_reason, actual_check_in, actual_check_out,
	cancelled_at, version, created_at, updated_at`

func (r *pgReservationRepo) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		INSERT INTO reservations (
			id, guest_name, guest_email, guest_phone, primary_room_id,
			check_in, check_out, status, payment_status, adults, children,
			special_requests, discount_cents, total_price_cents)
		VALUES (
			@id, @guest_name, @guest_email, @guest_phone, @primary_room_id,
			@check_in, @check_out, @status, @payment_status, @adults, @children,
			@special_requests, @discount_cents, @total_price_cents)
		ON CONFLICT (id) DO NOTHING
		RETURNING ` + reservationColumns

	args := pgx.NamedArgs{
		"id":                res.ID,
		"guest_name":        res.Guest.Name,
		"guest_email":       res.Guest.Email,
		"guest_phone":       res.Guest.Phone,
		"primary_room_id":   res.PrimaryRoomID,
		"check_in":          res.CheckIn,
		"check_out":         res.CheckOut,
		"status":            string(res.Status),
		"payment_status":    string(res.PaymentStatus),
		"adults":            res.Guests.Adults,
		"children":          res.Guests.Children,
		"special_requests":  res.SpecialRequests,
		"discount_cents":    toCents(res.Discount),
		"total_price_cents": toCents(res.TotalPrice),
	}

	created, err := scanReservation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// DO NOTHING returned no row: the id is already taken.
			return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", domain.ErrDuplicate)
		}
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", translate(err))
	}

	for _, b := range res.Rooms {
		if err := r.AddRoom(ctx, created, b); err != nil {
			return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", err)
		}
	}
	created.Rooms = res.Rooms
	created.Charges = []domain.Charge{}
	return created, nil
}

func (r *pgReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = @id`

	res, err := scanReservation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.GetByID: %w", err)
	}
	if res.Rooms, err = r.listRooms(ctx, id); err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.GetByID: rooms: %w", err)
	}
	if res.Charges, err = r.listCharges(ctx, id); err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.GetByID: charges: %w", err)
	}
	return res, nil
}

func (r *pgReservationRepo) FindOverlapping(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) ([]domain.Reservation, error) {
	if len(roomIDs) == 0 {
		return []domain.Reservation{}, nil
	}
	// Half-open overlap: rr.check_in < @check_out AND rr.check_out > @check_in.
	const q = `
		SELECT DISTINCT rr.reservation_id
		FROM reservation_rooms rr
		JOIN reservations r ON r.id = rr.reservation_id
		WHERE rr.active
		  AND rr.room_id = ANY(@room_ids)
		  AND r.status IN ('pending', 'confirmed', 'checked-in')
		  AND rr.check_in < @check_out
		  AND rr.check_out > @check_in
		  AND (@exclude::uuid IS NULL OR r.id <> @exclude::uuid)`

	args := pgx.NamedArgs{
		"room_ids":  roomIDs,
		"check_in":  checkIn,
		"check_out": checkOut,
		"exclude":   exclude,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.FindOverlapping: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[pgtype.UUID])
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.FindOverlapping: rows: %w", err)
	}

	out := make([]domain.Reservation, 0, len(ids))
	for _, id := range ids {
		res, err := r.GetByID(ctx, uuid.UUID(id.Bytes))
		if err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.FindOverlapping: %w", err)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *pgReservationRepo) ListStays(ctx context.Context, from, to time.Time) ([]domain.Reservation, error) {
	const q = `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE check_in < @to AND check_out > @from
		ORDER BY check_in, guest_name, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"from": from, "to": to})
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListStays: %w", err)
	}
	defer rows.Close()

	stays := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.ListStays: scan: %w", err)
		}
		stays = append(stays, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListStays: rows: %w", err)
	}
	rows.Close()

	for i := range stays {
		if stays[i].Rooms, err = r.listRooms(ctx, stays[i].ID); err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.ListStays: rooms: %w", err)
		}
		stays[i].Charges = []domain.Charge{}
	}
	return stays, nil
}

func (r *pgReservationRepo) Update(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		UPDATE reservations
		SET primary_room_id     = @primary_room_id,
		    status              = @status,
		    payment_status      = @payment_status,
		    payment_method      = @payment_method,
		    paid_amount_cents   = @paid_amount_cents,
		    total_price_cents   = @total_price_cents,
		    refund_amount_cents = @refund_amount_cents,
		    cancellation_reason = @cancellation_reason,
		    actual_check_in     = @actual_check_in,
		    actual_check_out    = @actual_check_out,
		    cancelled_at        = @cancelled_at,
		    version             = version + 1,
		    updated_at          = now()
		WHERE id = @id AND version = @version
		RETURNING version, updated_at`

	args := pgx.NamedArgs{
		"id":                  res.ID,
		"version":             res.Version,
		"primary_room_id":     res.PrimaryRoomID,
		"status":              string(res.Status),
		"payment_status":      string(res.PaymentStatus),
		"payment_method":      res.PaymentMethod,
		"paid_amount_cents":   toCents(res.PaidAmount),
		"total_price_cents":   toCents(res.TotalPrice),
		"refund_amount_cents": toCents(res.RefundAmount),
		"cancellation_reason": res.CancellationReason,
		"actual_check_in":     res.ActualCheckIn,
		"actual_check_out":    res.ActualCheckOut,
		"cancelled_at":        res.CancelledAt,
	}

	err := r.db.QueryRow(ctx, q, args).Scan(&res.Version, &res.UpdatedAt)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Update: %w", translate(err))
	}

	// No row matched: either the reservation is gone or someone else won.
	var exists bool
	const existsQ = `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = @id)`
	if err := r.db.QueryRow(ctx, existsQ, pgx.NamedArgs{"id": res.ID}).Scan(&exists); err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Update: %w", err)
	}
	if !exists {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Update: %w", domain.ErrNotFound)
	}
	return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Update: version %d: %w", res.Version, domain.ErrStaleWrite)
}

func (r *pgReservationRepo) AddRoom(ctx context.Context, res domain.Reservation, b domain.RoomBinding) error {
	const q = `
		INSERT INTO reservation_rooms (
			reservation_id, room_id, room_number, room_type, nightly_rate_cents,
			check_in, check_out, bound_at)
		VALUES (
			@reservation_id, @room_id, @room_number, @room_type, @rate,
			@check_in, @check_out, @bound_at)`

	args := pgx.NamedArgs{
		"reservation_id": res.ID,
		"room_id":        b.RoomID,
		"room_number":    b.RoomNumber,
		"room_type":      string(b.RoomType),
		"rate":           toCents(b.NightlyRate),
		"check_in":       res.CheckIn,
		"check_out":      res.CheckOut,
		"bound_at":       b.BoundAt,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.ReservationRepo.AddRoom: %w", translate(err))
	}
	return nil
}

func (r *pgReservationRepo) ReleaseRooms(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE reservation_rooms SET active = false WHERE reservation_id = @id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.ReservationRepo.ReleaseRooms: %w", err)
	}
	return nil
}

func (r *pgReservationRepo) AddCharge(ctx context.Context, id uuid.UUID, c domain.Charge) (domain.Charge, error) {
	const q = `
		INSERT INTO reservation_charges (
			reservation_id, description, quantity, unit_price_cents, amount_cents, category, author)
		VALUES (@reservation_id, @description, @quantity, @unit_price, @amount, @category, @author)
		RETURNING id, created_at`

	args := pgx.NamedArgs{
		"reservation_id": id,
		"description":    c.Description,
		"quantity":       c.Quantity,
		"unit_price":     toCents(c.UnitPrice),
		"amount":         toCents(c.Amount),
		"category":       c.Category,
		"author":         c.Author,
	}

	var chargeID pgtype.UUID
	if err := r.db.QueryRow(ctx, q, args).Scan(&chargeID, &c.CreatedAt); err != nil {
		return domain.Charge{}, fmt.Errorf("repo.ReservationRepo.AddCharge: %w", translate(err))
	}
	c.ID = uuid.UUID(chargeID.Bytes)
	return c, nil
}

func (r *pgReservationRepo) listRooms(ctx context.Context, id uuid.UUID) ([]domain.RoomBinding, error) {
	const q = `
		SELECT room_id, room_number, room_type, nightly_rate_cents, bound_at
		FROM reservation_rooms
		WHERE reservation_id = @id
		ORDER BY bound_at, room_number`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bindings := []domain.RoomBinding{}
	for rows.Next() {
		var (
			b        domain.RoomBinding
			roomID   pgtype.UUID
			roomType string
			cents    int64
		)
		if err := rows.Scan(&roomID, &b.RoomNumber, &roomType, &cents, &b.BoundAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		b.RoomID = uuid.UUID(roomID.Bytes)
		b.RoomType = domain.RoomType(roomType)
		b.NightlyRate = fromCents(cents)
		bindings = append(bindings, b)
	}
	return bindings, rows.Err()
}

func (r *pgReservationRepo) listCharges(ctx context.Context, id uuid.UUID) ([]domain.Charge, error) {
	const q = `
		SELECT id, description, quantity, unit_price_cents, amount_cents, category, author, created_at
		FROM reservation_charges
		WHERE reservation_id = @id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	charges := []domain.Charge{}
	for rows.Next() {
		var (
			c                 domain.Charge
			chargeID          pgtype.UUID
			unitCents, amount int64
		)
		if err := rows.Scan(&chargeID, &c.Description, &c.Quantity, &unitCents, &amount, &c.Category, &c.Author, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		c.ID = uuid.UUID(chargeID.Bytes)
		c.UnitPrice = fromCents(unitCents)
		c.Amount = fromCents(amount)
		charges = append(charges, c)
	}
	return charges, rows.Err()
}

// scanReservation maps a reservations row into a domain.Reservation without
// its bindings or charges. Legacy and nullable columns are converted here so
// that lifecycle code only ever sees the canonical shape.
func scanReservation(s scanner) (domain.Reservation, error) {
	var (
		res                                  domain.Reservation
		id, primaryRoom                      pgtype.UUID
		checkIn, checkOut                    pgtype.Date
		status, paymentStatus                string
		paidCents, discountCents, totalCents int64
		refundCents                          int64
		actualIn, actualOut, cancelledAt     pgtype.Timestamptz
	)

	err := s.Scan(
		&id, &res.Guest.Name, &res.Guest.Email, &res.Guest.Phone, &primaryRoom,
		&checkIn, &checkOut, &status, &paymentStatus, &res.PaymentMethod, &paidCents,
		&res.Guests.Adults, &res.Guests.Children, &res.SpecialRequests, &discountCents, &totalCents,
		&refundCents, &res.CancellationReason, &actualIn, &actualOut,
		&cancelledAt, &res.Version, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reservation{}, domain.ErrNotFound
		}
		return domain.Reservation{}, err
	}

	res.ID = uuid.UUID(id.Bytes)
	if primaryRoom.Valid {
		p := uuid.UUID(primaryRoom.Bytes)
		res.PrimaryRoomID = &p
	}
	res.CheckIn = domain.DateOf(checkIn.Time)
	res.CheckOut = domain.DateOf(checkOut.Time)
	res.Status = domain.ReservationStatus(status)
	res.PaymentStatus = domain.PaymentStatus(paymentStatus)
	res.PaidAmount = fromCents(paidCents)
	res.Discount = fromCents(discountCents)
	res.TotalPrice = fromCents(totalCents)
	res.RefundAmount = fromCents(refundCents)
	res.ActualCheckIn = timePtr(actualIn)
	res.ActualCheckOut = timePtr(actualOut)
	res.CancelledAt = timePtr(cancelledAt)
	return res, nil
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}
