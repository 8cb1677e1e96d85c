// Package handler implements the HTTP handlers for the reservation API.
// Server satisfies gen.StrictServerInterface: the generated wrapper binds
// parameters and decodes bodies, and the methods here validate them, call
// services through the interfaces below, and map domain errors onto the
// per-operation response types.
// Methods are split into resource files (health.go, reservation.go, etc.)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
)

// ReservationServicer defines the lifecycle operations the reservation
// handlers depend on. Defining the interface here (in the consumer package)
// follows the Go convention: "accept interfaces, return concrete types".
// It lets handler tests inject a mock without touching the database.
type ReservationServicer interface {
	Create(ctx context.Context, in domain.NewReservation) (domain.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	AllocateRoom(ctx context.Context, id, roomID uuid.UUID) (domain.Reservation, error)
	CheckIn(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	CheckOut(ctx context.Context, id uuid.UUID) (domain.Reservation, domain.Bill, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (domain.Reservation, decimal.Decimal, error)
	CancellationQuote(ctx context.Context, id uuid.UUID) (domain.CancellationDecision, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, upd domain.PaymentUpdate) (domain.Reservation, error)
}

// LedgerServicer defines the charge and billing operations.
type LedgerServicer interface {
	AddCharge(ctx context.Context, id uuid.UUID, in domain.NewCharge) (domain.Reservation, error)
	Bill(ctx context.Context, id uuid.UUID) (domain.Bill, error)
}

// AvailabilityServicer answers availability queries.
type AvailabilityServicer interface {
	CheckAvailableRooms(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time) ([]uuid.UUID, error)
}

// RoomServicer defines the room catalog operations.
type RoomServicer interface {
	Create(ctx context.Context, room domain.Room) (domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Room, int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) (domain.Room, error)
}

// ManifestServicer builds the front-desk stay manifest.
type ManifestServicer interface {
	Manifest(ctx context.Context, from, to time.Time) ([]domain.ManifestRow, error)
}

// Server holds the dependencies of every handler.
// Wire it in main.go via NewRouter(server).
type Server struct {
	reservations ReservationServicer
	ledger       LedgerServicer
	availability AvailabilityServicer
	rooms        RoomServicer
	manifest     ManifestServicer

	validate *validator.Validate
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// Any servicer may be nil when a test exercises only part of the API.
func NewServer(res ReservationServicer, ledger LedgerServicer, avail AvailabilityServicer, rooms RoomServicer, manifest ManifestServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		reservations: res,
		ledger:       ledger,
		availability: avail,
		rooms:        rooms,
		manifest:     manifest,
		validate:     newValidator(),
		log:          log,
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
