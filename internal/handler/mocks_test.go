package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/handler"
)

// mockReservationServicer is a test double for handler.ReservationServicer.
// Set only the method fields your test needs.
type mockReservationServicer struct {
	create            func(ctx context.Context, in domain.NewReservation) (domain.Reservation, error)
	get               func(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	confirm           func(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	allocateRoom      func(ctx context.Context, id, roomID uuid.UUID) (domain.Reservation, error)
	checkIn           func(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	checkOut          func(ctx context.Context, id uuid.UUID) (domain.Reservation, domain.Bill, error)
	cancel            func(ctx context.Context, id uuid.UUID, reason string) (domain.Reservation, decimal.Decimal, error)
	cancellationQuote func(ctx context.Context, id uuid.UUID) (domain.CancellationDecision, error)
	markNoShow        func(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	updatePayment     func(ctx context.Context, id uuid.UUID, upd domain.PaymentUpdate) (domain.Reservation, error)
}

func (m *mockReservationServicer) Create(ctx context.Context, in domain.NewReservation) (domain.Reservation, error) {
	return m.create(ctx, in)
}
func (m *mockReservationServicer) Get(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	return m.get(ctx, id)
}
func (m *mockReservationServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	return m.confirm(ctx, id)
}
func (m *mockReservationServicer) AllocateRoom(ctx context.Context, id, roomID uuid.UUID) (domain.Reservation, error) {
	return m.allocateRoom(ctx, id, roomID)
}
func (m *mockReservationServicer) CheckIn(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	return m.checkIn(ctx, id)
}
func (m *mockReservationServicer) CheckOut(ctx context.Context, id uuid.UUID) (domain.Reservation, domain.Bill, error) {
	return m.checkOut(ctx, id)
}
func (m *mockReservationServicer) Cancel(ctx context.Context, id uuid.UUID, reason string) (domain.Reservation, decimal.Decimal, error) {
	return m.cancel(ctx, id, reason)
}
func (m *mockReservationServicer) CancellationQuote(ctx context.Context, id uuid.UUID) (domain.CancellationDecision, error) {
	return m.cancellationQuote(ctx, id)
}
func (m *mockReservationServicer) MarkNoShow(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	return m.markNoShow(ctx, id)
}
func (m *mockReservationServicer) UpdatePayment(ctx context.Context, id uuid.UUID, upd domain.PaymentUpdate) (domain.Reservation, error) {
	return m.updatePayment(ctx, id, upd)
}

var _ handler.ReservationServicer = (*mockReservationServicer)(nil)

type mockLedgerServicer struct {
	addCharge func(ctx context.Context, id uuid.UUID, in domain.NewCharge) (domain.Reservation, error)
	bill      func(ctx context.Context, id uuid.UUID) (domain.Bill, error)
}

func (m *mockLedgerServicer) AddCharge(ctx context.Context, id uuid.UUID, in domain.NewCharge) (domain.Reservation, error) {
	return m.addCharge(ctx, id, in)
}
func (m *mockLedgerServicer) Bill(ctx context.Context, id uuid.UUID) (domain.Bill, error) {
	return m.bill(ctx, id)
}

var _ handler.LedgerServicer = (*mockLedgerServicer)(nil)

type mockAvailabilityServicer struct {
	checkAvailableRooms func(ctx context.Context, roomIDs []uuid.UUID, in, out time.Time) ([]uuid.UUID, error)
}

func (m *mockAvailabilityServicer) CheckAvailableRooms(ctx context.Context, roomIDs []uuid.UUID, in, out time.Time) ([]uuid.UUID, error) {
	return m.checkAvailableRooms(ctx, roomIDs, in, out)
}

var _ handler.AvailabilityServicer = (*mockAvailabilityServicer)(nil)

type mockRoomServicer struct {
	create    func(ctx context.Context, room domain.Room) (domain.Room, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Room, error)
	list      func(ctx context.Context, p domain.PaginationParams) ([]domain.Room, int64, error)
	setStatus func(ctx context.Context, id uuid.UUID, status domain.RoomStatus) (domain.Room, error)
}

func (m *mockRoomServicer) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	return m.create(ctx, room)
}
func (m *mockRoomServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	return m.getByID(ctx, id)
}
func (m *mockRoomServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Room, int64, error) {
	return m.list(ctx, p)
}
func (m *mockRoomServicer) SetStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) (domain.Room, error) {
	return m.setStatus(ctx, id, status)
}

var _ handler.RoomServicer = (*mockRoomServicer)(nil)

type mockManifestServicer struct {
	manifest func(ctx context.Context, from, to time.Time) ([]domain.ManifestRow, error)
}

func (m *mockManifestServicer) Manifest(ctx context.Context, from, to time.Time) ([]domain.ManifestRow, error) {
	return m.manifest(ctx, from, to)
}

var _ handler.ManifestServicer = (*mockManifestServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// services groups the mocks a test wires into the router. Nil fields are
// fine as long as the test does not hit their routes.
type services struct {
	reservations *mockReservationServicer
	ledger       *mockLedgerServicer
	availability *mockAvailabilityServicer
	rooms        *mockRoomServicer
	manifest     *mockManifestServicer
}

// newHTTPHandler wires a Server with the given mocks into the chi router.
// This mirrors how main.go wires it in production, minus middleware.
func newHTTPHandler(svc services) http.Handler {
	srv := handler.NewServer(svc.reservations, svc.ledger, svc.availability, svc.rooms, svc.manifest, nil)
	return handler.NewRouter(srv)
}

// serve sends one request through the router and returns the recorder.
func serve(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, jsonBody(t, body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func roomFixture() domain.Room {
	now := time.Now().UTC()
	return domain.Room{
		ID:          uuid.New(),
		Number:      "101",
		Type:        domain.RoomDouble,
		NightlyRate: decimal.RequireFromString("150.00"),
		Capacity:    2,
		Status:      domain.RoomAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func reservationFixture() domain.Reservation {
	room := roomFixture()
	now := time.Now().UTC()
	primary := room.ID
	return domain.Reservation{
		ID:    uuid.New(),
		Guest: domain.GuestInfo{Name: "Ada Lovelace", Email: "ada@example.com"},
		Rooms: []domain.RoomBinding{{
			RoomID:      room.ID,
			RoomNumber:  room.Number,
			RoomType:    room.Type,
			NightlyRate: room.NightlyRate,
			BoundAt:     now,
		}},
		PrimaryRoomID: &primary,
		CheckIn:       day(2025, 3, 10),
		CheckOut:      day(2025, 3, 12),
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
		Guests:        domain.GuestCount{Adults: 2},
		TotalPrice:    decimal.RequireFromString("300.00"),
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
