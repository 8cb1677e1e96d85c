package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/repo"
)

// defaultChargeCategory is used when a charge is posted without one.
const defaultChargeCategory = "other"

// MaxChargeQuantity caps the quantity of a single charge line.
const MaxChargeQuantity = 1000

// LedgerService posts incidental charges and previews bills.
type LedgerService struct {
	tx  repo.Transactor
	cfg Settings
}

// NewLedgerService constructs a LedgerService.
func NewLedgerService(tx repo.Transactor, cfg Settings) *LedgerService {
	return &LedgerService{tx: tx, cfg: cfg}
}

// AddCharge appends a charge to a non-terminal reservation and recomputes its
// total price. Status is never touched.
// Returns domain.ErrValidation for a blank description, a quantity outside
// 1..MaxChargeQuantity, or a unit price that is not positive, has sub-cent
// precision or exceeds MaxAmount, and a *domain.StateError once the
// reservation is checked-out, cancelled or no-show.
func (s *LedgerService) AddCharge(ctx context.Context, id uuid.UUID, in domain.NewCharge) (domain.Reservation, error) {
	if err := validateCharge(in); err != nil {
		return domain.Reservation{}, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultChargeCategory
	}

	out, err := mutate(ctx, s.tx, s.cfg.Retries, id, func(rs repo.Repos, res *domain.Reservation) error {
		if !domain.CanApply(res.Status, domain.TransitionCharge) {
			return &domain.StateError{Transition: domain.TransitionCharge, Current: res.Status}
		}
		charge, err := rs.Reservations.AddCharge(ctx, res.ID, domain.Charge{
			Description: strings.TrimSpace(in.Description),
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Amount:      in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
			Category:    category,
			Author:      strings.TrimSpace(in.Author),
		})
		if err != nil {
			return err
		}
		res.Charges = append(res.Charges, charge)
		res.Recalculate()
		return nil
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.LedgerService.AddCharge: %w", err)
	}
	return out, nil
}

// Bill itemizes the reservation as it stands now. Nothing is cached: the
// totals are recomputed from rooms, charges and discount on every call.
func (s *LedgerService) Bill(ctx context.Context, id uuid.UUID) (domain.Bill, error) {
	var res domain.Reservation
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		var err error
		res, err = rs.Reservations.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Bill{}, fmt.Errorf("service.LedgerService.Bill: %w", err)
	}
	return domain.NewBill(res, s.cfg.TaxRate, s.cfg.now()), nil
}

func validateCharge(c domain.NewCharge) error {
	if strings.TrimSpace(c.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if c.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	if c.Quantity > MaxChargeQuantity {
		return fmt.Errorf("%w: quantity must not exceed %d", domain.ErrValidation, MaxChargeQuantity)
	}
	if err := validateMoney("unit_price", c.UnitPrice); err != nil {
		return err
	}
	if !c.UnitPrice.IsPositive() {
		return fmt.Errorf("%w: unit_price must be positive", domain.ErrValidation)
	}
	return nil
}
