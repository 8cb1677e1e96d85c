package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/notify"
	"github.com/pkordes/hotel-reservations/backend/internal/repo"
)

// ReservationService drives reservations through their lifecycle.
// Every transition is one transaction: the guard is checked against the
// state read inside it, and the write is conditional on that state's version.
type ReservationService struct {
	tx       repo.Transactor
	notifier Notifier
	log      *slog.Logger
	cfg      Settings
}

// NewReservationService constructs a ReservationService.
func NewReservationService(tx repo.Transactor, n Notifier, log *slog.Logger, cfg Settings) *ReservationService {
	if log == nil {
		log = slog.Default()
	}
	return &ReservationService{tx: tx, notifier: n, log: log, cfg: cfg}
}

// Create books a new pending reservation for the requested rooms.
// Returns domain.ErrValidation for malformed input, domain.ErrNotFound if a
// room id does not resolve, and a *domain.ConflictError if any requested
// room is held over an intersecting stay.
//
// When in.ID is set the call is idempotent: if that reservation already
// exists it is returned unchanged.
func (s *ReservationService) Create(ctx context.Context, in domain.NewReservation) (domain.Reservation, error) {
	if err := validateNewReservation(in, s.cfg.today()); err != nil {
		return domain.Reservation{}, err
	}
	in.CheckIn, in.CheckOut = domain.DateOf(in.CheckIn), domain.DateOf(in.CheckOut)

	var out domain.Reservation
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		if in.ID != nil {
			existing, err := rs.Reservations.GetByID(ctx, *in.ID)
			if err == nil {
				out = existing
				return nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}

		rooms, err := rs.Rooms.GetByIDs(ctx, in.RoomIDs)
		if err != nil {
			return err
		}
		if err := checkCapacity(rooms, in.Guests); err != nil {
			return err
		}

		conflicts, err := findConflicts(ctx, rs.Reservations, in.RoomIDs, in.CheckIn, in.CheckOut, nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return newConflictError(rooms, in.CheckIn, in.CheckOut, conflicts)
		}

		res := newReservation(in)
		now := s.cfg.now()
		for _, rm := range rooms {
			res.Bind(rm, now)
		}
		res.Recalculate()

		created, err := rs.Reservations.Create(ctx, res)
		if err != nil {
			// Another booking committed between our check and our write.
			if errors.Is(err, domain.ErrConflict) {
				return newConflictError(rooms, in.CheckIn, in.CheckOut, nil)
			}
			return err
		}
		out = created
		return nil
	})

	// A concurrent retry with the same id won the insert; hand back its result.
	if errors.Is(err, domain.ErrDuplicate) && in.ID != nil {
		existing, getErr := s.Get(ctx, *in.ID)
		if getErr == nil {
			return existing, nil
		}
	}
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}

	s.log.InfoContext(ctx, "reservation created",
		slog.String("reservation_id", out.ID.String()),
		slog.Int("rooms", len(out.Rooms)),
		slog.String("total_price", out.TotalPrice.String()),
	)
	return out, nil
}

// Get returns a reservation by id. Returns domain.ErrNotFound if absent.
func (s *ReservationService) Get(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	var out domain.Reservation
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		var err error
		out, err = rs.Reservations.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Get: %w", err)
	}
	return out, nil
}

// Confirm moves a pending reservation to confirmed.
func (s *ReservationService) Confirm(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	out, err := mutate(ctx, s.tx, s.cfg.Retries, id, func(_ repo.Repos, res *domain.Reservation) error {
		return res.Apply(domain.TransitionConfirm)
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Confirm: %w", err)
	}
	s.logTransition(ctx, out, domain.TransitionConfirm)
	return out, nil
}

// AllocateRoom binds roomID to a pending or confirmed reservation.
// Returns domain.ErrNotFound if either id does not resolve and a
// *domain.ConflictError if another active reservation holds the room over an
// intersecting stay. Allocating a room that is already bound is a no-op.
func (s *ReservationService) AllocateRoom(ctx context.Context, id, roomID uuid.UUID) (domain.Reservation, error) {
	out, err := mutate(ctx, s.tx, s.cfg.Retries, id, func(rs repo.Repos, res *domain.Reservation) error {
		if !domain.CanApply(res.Status, domain.TransitionAllocate) {
			return &domain.StateError{Transition: domain.TransitionAllocate, Current: res.Status}
		}
		if res.HasRoom(roomID) {
			return errUnchanged
		}

		room, err := rs.Rooms.GetByID(ctx, roomID)
		if err != nil {
			return err
		}
		conflicts, err := findConflicts(ctx, rs.Reservations, []uuid.UUID{roomID}, res.CheckIn, res.CheckOut, &res.ID)
		if err != nil {
			return err
		}
		rooms := []domain.Room{room}
		if len(conflicts) > 0 {
			return newConflictError(rooms, res.CheckIn, res.CheckOut, conflicts)
		}

		res.Bind(room, s.cfg.now())
		res.Recalculate()
		if err := rs.Reservations.AddRoom(ctx, *res, res.Rooms[len(res.Rooms)-1]); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return newConflictError(rooms, res.CheckIn, res.CheckOut, nil)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.AllocateRoom: %w", err)
	}
	s.logTransition(ctx, out, domain.TransitionAllocate)
	return out, nil
}

// CheckIn moves a confirmed reservation with at least one bound room to
// checked-in and marks its rooms occupied. Arrival before the check-in date
// in the hotel's zone is refused: the room may still belong to the previous
// stay.
func (s *ReservationService) CheckIn(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	out, err := mutate(ctx, s.tx, s.cfg.Retries, id, func(rs repo.Repos, res *domain.Reservation) error {
		if domain.CanApply(res.Status, domain.TransitionCheckIn) {
			if len(res.Rooms) == 0 {
				return &domain.StateError{Transition: domain.TransitionCheckIn, Current: res.Status, Reason: "no room allocated"}
			}
			if today := s.cfg.today(); today.Before(res.CheckIn) {
				return &domain.StateError{
					Transition: domain.TransitionCheckIn,
					Current:    res.Status,
					Reason:     "check-in date " + res.CheckIn.Format(domain.DateLayout) + " has not arrived",
				}
			}
		}
		if err := res.Apply(domain.TransitionCheckIn); err != nil {
			return err
		}
		if err := setRoomStatus(ctx, rs.Rooms, res.RoomIDs(), domain.RoomOccupied); err != nil {
			return err
		}
		now := s.cfg.now()
		res.ActualCheckIn = &now
		return nil
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.CheckIn: %w", err)
	}

	s.logTransition(ctx, out, domain.TransitionCheckIn)
	s.notify(ctx, notify.TopicCheckedIn, notify.NewReservationMessage(out, s.cfg.now()))
	return out, nil
}

// CheckOut moves a checked-in, fully paid reservation to checked-out, frees
// its rooms and finalizes the bill, which is returned and handed to billing.
func (s *ReservationService) CheckOut(ctx context.Context, id uuid.UUID) (domain.Reservation, domain.Bill, error) {
	out, err := mutate(ctx, s.tx, s.cfg.Retries, id, func(rs repo.Repos, res *domain.Reservation) error {
		if domain.CanApply(res.Status, domain.TransitionCheckOut) && res.PaymentStatus != domain.PaymentPaid {
			return &domain.StateError{
				Transition: domain.TransitionCheckOut,
				Current:    res.Status,
				Reason:     fmt.Sprintf("payment status is %s", res.PaymentStatus),
			}
		}
		if err := res.Apply(domain.TransitionCheckOut); err != nil {
			return err
		}
		if err := s.freeRooms(ctx, rs, *res); err != nil {
			return err
		}
		if err := rs.Reservations.ReleaseRooms(ctx, res.ID); err != nil {
			return err
		}
		now := s.cfg.now()
		res.ActualCheckOut = &now
		return nil
	})
	if err != nil {
		return domain.Reservation{}, domain.Bill{}, fmt.Errorf("service.ReservationService.CheckOut: %w", err)
	}

	bill := domain.NewBill(out, s.cfg.TaxRate, *out.ActualCheckOut)
	s.logTransition(ctx, out, domain.TransitionCheckOut)
	s.notify(ctx, notify.TopicCheckedOut, notify.NewReservationMessage(out, bill.FinalizedAt))
	s.notify(ctx, notify.TopicBillingFinalized, notify.NewBillingMessage(bill))
	return out, bill, nil
}

// Cancel cancels a pending or confirmed reservation if the cancellation
// policy allows it, releases its rooms, and returns the refund owed.
// Refund execution belongs to the payment collaborator.
func (s *ReservationService) Cancel(ctx context.Context, id uuid.UUID, reason string) (domain.Reservation, decimal.Decimal, error) {
	out, err := mutate(ctx, s.tx, s.cfg.Retries, id, func(rs repo.Repos, res *domain.Reservation) error {
		now := s.cfg.now()
		decision := s.cfg.Policy.Evaluate(*res, now)
		if domain.CanApply(res.Status, domain.TransitionCancel) && !decision.Cancellable {
			return &domain.StateError{
				Transition: domain.TransitionCancel,
				Current:    res.Status,
				Reason: fmt.Sprintf("%.1f hours before check-in, more than %.0f required",
					decision.HoursUntilCheckIn, s.cfg.Policy.MinNotice.Hours()),
			}
		}
		if err := res.Apply(domain.TransitionCancel); err != nil {
			return err
		}
		if err := rs.Reservations.ReleaseRooms(ctx, res.ID); err != nil {
			return err
		}
		res.RefundAmount = decision.RefundAmount
		res.CancellationReason = strings.TrimSpace(reason)
		res.CancelledAt = &now
		return nil
	})
	if err != nil {
		return domain.Reservation{}, decimal.Zero, fmt.Errorf("service.ReservationService.Cancel: %w", err)
	}

	s.logTransition(ctx, out, domain.TransitionCancel)
	s.notify(ctx, notify.TopicCancelled, notify.NewReservationMessage(out, *out.CancelledAt))
	return out, out.RefundAmount, nil
}

// CancellationQuote evaluates the cancellation policy for a reservation
// without changing it.
func (s *ReservationService) CancellationQuote(ctx context.Context, id uuid.UUID) (domain.CancellationDecision, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return domain.CancellationDecision{}, fmt.Errorf("service.ReservationService.CancellationQuote: %w", err)
	}
	return s.cfg.Policy.Evaluate(res, s.cfg.now()), nil
}

// MarkNoShow moves a confirmed reservation whose check-in date is over to
// no-show and releases its rooms.
func (s *ReservationService) MarkNoShow(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	out, err := mutate(ctx, s.tx, s.cfg.Retries, id, func(rs repo.Repos, res *domain.Reservation) error {
		dayOver := s.cfg.Policy.CheckInInstant(*res).AddDate(0, 0, 1)
		if domain.CanApply(res.Status, domain.TransitionNoShow) && s.cfg.now().Before(dayOver) {
			return &domain.StateError{
				Transition: domain.TransitionNoShow,
				Current:    res.Status,
				Reason:     "check-in date has not passed",
			}
		}
		if err := res.Apply(domain.TransitionNoShow); err != nil {
			return err
		}
		return rs.Reservations.ReleaseRooms(ctx, res.ID)
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.MarkNoShow: %w", err)
	}
	s.logTransition(ctx, out, domain.TransitionNoShow)
	return out, nil
}

// UpdatePayment records the payment collaborator's view of a reservation.
// It never changes Status. Terminal reservations accept only refunded.
func (s *ReservationService) UpdatePayment(ctx context.Context, id uuid.UUID, upd domain.PaymentUpdate) (domain.Reservation, error) {
	if !upd.Status.Valid() {
		return domain.Reservation{}, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, upd.Status)
	}
	if err := validateMoney("paid_amount", upd.PaidAmount); err != nil {
		return domain.Reservation{}, err
	}
	if upd.PaidAmount.IsNegative() {
		return domain.Reservation{}, fmt.Errorf("%w: paid_amount must not be negative", domain.ErrValidation)
	}

	out, err := mutate(ctx, s.tx, s.cfg.Retries, id, func(_ repo.Repos, res *domain.Reservation) error {
		if res.Status.Terminal() && upd.Status != domain.PaymentRefunded {
			return &domain.StateError{
				Transition: domain.TransitionPayment,
				Current:    res.Status,
				Reason:     "only refunded is accepted after a terminal status",
			}
		}
		res.PaymentStatus = upd.Status
		res.PaymentMethod = strings.TrimSpace(upd.Method)
		res.PaidAmount = upd.PaidAmount
		return nil
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.UpdatePayment: %w", err)
	}

	s.log.InfoContext(ctx, "payment updated",
		slog.String("reservation_id", out.ID.String()),
		slog.String("payment_status", string(out.PaymentStatus)),
	)
	return out, nil
}

// freeRooms marks res's rooms available, except those another checked-in
// reservation is occupying, e.g. the next guest arriving before res leaves.
func (s *ReservationService) freeRooms(ctx context.Context, rs repo.Repos, res domain.Reservation) error {
	today := s.cfg.today()
	from, to := res.CheckIn, res.CheckOut
	if today.Before(from) {
		from = today
	}
	if tomorrow := today.AddDate(0, 0, 1); tomorrow.After(to) {
		to = tomorrow
	}

	others, err := rs.Reservations.FindOverlapping(ctx, res.RoomIDs(), from, to, &res.ID)
	if err != nil {
		return err
	}
	occupied := make(map[uuid.UUID]bool)
	for _, o := range others {
		if o.Status != domain.StatusCheckedIn || o.ID == res.ID {
			continue
		}
		for _, b := range o.Rooms {
			occupied[b.RoomID] = true
		}
	}

	free := make([]uuid.UUID, 0, len(res.Rooms))
	for _, roomID := range res.RoomIDs() {
		if !occupied[roomID] {
			free = append(free, roomID)
		}
	}
	return setRoomStatus(ctx, rs.Rooms, free, domain.RoomAvailable)
}

func (s *ReservationService) logTransition(ctx context.Context, res domain.Reservation, t domain.Transition) {
	s.log.InfoContext(ctx, "reservation transitioned",
		slog.String("reservation_id", res.ID.String()),
		slog.String("transition", string(t)),
		slog.String("status", string(res.Status)),
		slog.Int("version", res.Version),
	)
}

func (s *ReservationService) notify(ctx context.Context, topic notify.Topic, msg any) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, topic, msg)
}

func newReservation(in domain.NewReservation) domain.Reservation {
	id := uuid.New()
	if in.ID != nil {
		id = *in.ID
	}
	return domain.Reservation{
		ID: id,
		Guest: domain.GuestInfo{
			Name:  strings.TrimSpace(in.Guest.Name),
			Email: strings.TrimSpace(in.Guest.Email),
			Phone: strings.TrimSpace(in.Guest.Phone),
		},
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentUnpaid,
		PaidAmount:      decimal.Zero,
		Guests:          in.Guests,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		Charges:         []domain.Charge{},
		Discount:        in.Discount,
		RefundAmount:    decimal.Zero,
	}
}

func setRoomStatus(ctx context.Context, rooms repo.RoomRepo, ids []uuid.UUID, status domain.RoomStatus) error {
	for _, id := range ids {
		if _, err := rooms.SetStatus(ctx, id, status); err != nil {
			return err
		}
	}
	return nil
}

func validateNewReservation(in domain.NewReservation, today time.Time) error {
	if strings.TrimSpace(in.Guest.Name) == "" {
		return fmt.Errorf("%w: guest name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Guest.Email) == "" {
		return fmt.Errorf("%w: guest email is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Guest.Email)); err != nil {
		return fmt.Errorf("%w: guest email is malformed", domain.ErrValidation)
	}
	if err := validateStay(in.CheckIn, in.CheckOut); err != nil {
		return err
	}
	if domain.DateOf(in.CheckIn).Before(today) {
		return fmt.Errorf("%w: check_in must not be in the past", domain.ErrValidation)
	}
	if in.Guests.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", domain.ErrValidation)
	}
	if in.Guests.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", domain.ErrValidation)
	}
	if err := validateMoney("discount", in.Discount); err != nil {
		return err
	}
	if in.Discount.IsNegative() {
		return fmt.Errorf("%w: discount must not be negative", domain.ErrValidation)
	}
	seen := make(map[uuid.UUID]bool, len(in.RoomIDs))
	for _, id := range in.RoomIDs {
		if seen[id] {
			return fmt.Errorf("%w: room %s requested twice", domain.ErrValidation, id)
		}
		seen[id] = true
	}
	return nil
}

func checkCapacity(rooms []domain.Room, guests domain.GuestCount) error {
	if len(rooms) == 0 {
		return nil
	}
	capacity := 0
	for _, rm := range rooms {
		capacity += rm.Capacity
	}
	if guests.Total() > capacity {
		return fmt.Errorf("%w: %d guests exceed the capacity %d of the requested rooms",
			domain.ErrValidation, guests.Total(), capacity)
	}
	return nil
}
