package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/repo"
)

// MaxManifestDays bounds the window of a single manifest request.
const MaxManifestDays = 92

// ManifestService assembles the front-desk stay manifest.
type ManifestService struct {
	tx repo.Transactor
}

// NewManifestService constructs a ManifestService.
func NewManifestService(tx repo.Transactor) *ManifestService {
	return &ManifestService{tx: tx}
}

// Manifest returns one ManifestRow per bound room for every reservation whose
// stay shares a night with [from, to), in check-in order. Reservations in
// every status are included so the desk also sees cancellations and no-shows.
func (s *ManifestService) Manifest(ctx context.Context, from, to time.Time) ([]domain.ManifestRow, error) {
	if err := validateStay(from, to); err != nil {
		return nil, err
	}
	from, to = domain.DateOf(from), domain.DateOf(to)
	if n := domain.NightsBetween(from, to); n > MaxManifestDays {
		return nil, fmt.Errorf("%w: manifest window is %d days, at most %d allowed", domain.ErrValidation, n, MaxManifestDays)
	}

	var stays []domain.Reservation
	err := s.tx.InTx(ctx, func(rs repo.Repos) error {
		var err error
		stays, err = rs.Reservations.ListStays(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.ManifestService.Manifest: %w", err)
	}

	rows := []domain.ManifestRow{}
	for _, res := range stays {
		rows = append(rows, domain.ManifestRows(res)...)
	}
	return rows, nil
}
