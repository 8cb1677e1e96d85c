// Package service contains the business logic of the reservation engine.
// Services validate inputs, enforce lifecycle guards, and run every
// read-validate-write unit inside a single repo transaction.
// No SQL lives here. Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/notify"
	"github.com/pkordes/hotel-reservations/backend/internal/repo"
)

// Notifier receives lifecycle events after their transaction commits.
// *notify.Notifier satisfies it.
type Notifier interface {
	Notify(ctx context.Context, topic notify.Topic, msg any)
}

// Settings holds the tunables shared by the services.
type Settings struct {
	// TaxRate is applied to the bill subtotal.
	TaxRate decimal.Decimal
	// Retries is how many times a read-validate-write unit is attempted
	// when it loses an optimistic-concurrency race.
	Retries int
	// Policy decides cancellability and refunds.
	Policy domain.CancellationPolicy
	// Now is the wall clock. Tests replace it.
	Now func() time.Time
}

// DefaultSettings returns 10% tax, three attempts, the default cancellation
// policy and the real clock.
func DefaultSettings() Settings {
	return Settings{
		TaxRate: domain.DefaultTaxRate,
		Retries: 3,
		Policy:  domain.DefaultCancellationPolicy(),
		Now:     time.Now,
	}
}

func (s Settings) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// today is the current calendar date in the hotel's time zone, expressed as
// UTC midnight like every stored stay date.
func (s Settings) today() time.Time {
	loc := s.Policy.Location
	if loc == nil {
		loc = time.UTC
	}
	return domain.DateOf(s.now().In(loc))
}

// errUnchanged lets a mutation report that nothing needs writing.
var errUnchanged = errors.New("unchanged")

// retry runs fn until it returns anything other than domain.ErrStaleWrite,
// or attempts are used up.
func retry(ctx context.Context, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if !errors.Is(err, domain.ErrStaleWrite) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}

// mutate loads reservation id, lets fn validate and change it, and writes it
// back with a version check, all in one transaction. A lost race re-runs the
// whole unit against fresh state. fn may return errUnchanged to commit
// without writing.
func mutate(ctx context.Context, tx repo.Transactor, attempts int, id uuid.UUID,
	fn func(rs repo.Repos, res *domain.Reservation) error) (domain.Reservation, error) {

	var out domain.Reservation
	err := retry(ctx, attempts, func() error {
		return tx.InTx(ctx, func(rs repo.Repos) error {
			res, err := rs.Reservations.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if err := fn(rs, &res); err != nil {
				if errors.Is(err, errUnchanged) {
					out = res
					return nil
				}
				return err
			}
			updated, err := rs.Reservations.Update(ctx, res)
			if err != nil {
				return err
			}
			out = updated
			return nil
		})
	})
	return out, err
}

// findConflicts returns the active reservations that hold any of roomIDs on
// at least one night of [checkIn, checkOut), other than exclude.
func findConflicts(ctx context.Context, r repo.ReservationRepo, roomIDs []uuid.UUID,
	checkIn, checkOut time.Time, exclude *uuid.UUID) ([]domain.Reservation, error) {

	candidates, err := r.FindOverlapping(ctx, roomIDs, checkIn, checkOut, exclude)
	if err != nil {
		return nil, err
	}
	conflicts := make([]domain.Reservation, 0, len(candidates))
	for _, c := range candidates {
		if !c.Status.Active() || (exclude != nil && c.ID == *exclude) {
			continue
		}
		if domain.Overlaps(c.CheckIn, c.CheckOut, checkIn, checkOut) {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts, nil
}

// newConflictError names the requested rooms that conflicts hold. With no
// conflicts at hand (the database constraint fired instead) every requested
// room is named.
func newConflictError(rooms []domain.Room, checkIn, checkOut time.Time, conflicts []domain.Reservation) *domain.ConflictError {
	held := make(map[uuid.UUID]bool)
	with := make([]uuid.UUID, 0, len(conflicts))
	for _, c := range conflicts {
		with = append(with, c.ID)
		for _, b := range c.Rooms {
			held[b.RoomID] = true
		}
	}

	numbers := make([]string, 0, len(rooms))
	for _, rm := range rooms {
		if len(conflicts) == 0 || held[rm.ID] {
			numbers = append(numbers, rm.Number)
		}
	}
	return &domain.ConflictError{RoomNumbers: numbers, CheckIn: checkIn, CheckOut: checkOut, With: with}
}

// MaxAmount is the largest single money value accepted. Amounts are stored
// as int64 minor units, and totals multiply them by nights and quantities.
var MaxAmount = decimal.New(1, 9)

// validateMoney rejects sub-cent precision and values above MaxAmount.
func validateMoney(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(2)) {
		return fmt.Errorf("%w: %s must have at most two decimal places", domain.ErrValidation, field)
	}
	if d.Abs().GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: %s must not exceed %s", domain.ErrValidation, field, MaxAmount)
	}
	return nil
}

// MaxStayNights is the longest stay a reservation or availability query may span.
const MaxStayNights = 365

func validateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: check_in and check_out are required", domain.ErrValidation)
	}
	if !domain.DateOf(checkIn).Before(domain.DateOf(checkOut)) {
		return fmt.Errorf("%w: check_out must be after check_in", domain.ErrValidation)
	}
	if n := domain.NightsBetween(checkIn, checkOut); n > MaxStayNights {
		return fmt.Errorf("%w: stay of %d nights exceeds %d", domain.ErrValidation, n, MaxStayNights)
	}
	return nil
}
