package service_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/notify"
	"github.com/pkordes/hotel-reservations/backend/internal/repo"
	"github.com/pkordes/hotel-reservations/backend/internal/service"
)

// fakeStore is an in-memory repo.Transactor. Transactions are serialized by
// a mutex and a failed transaction restores the snapshot taken when it
// began, so services observe the same commit/rollback behaviour as with
// Postgres. Bindings are checked against each other on write, standing in
// for the exclusion constraint.
type fakeStore struct {
	mu    sync.Mutex
	state fakeState

	// hideOverlaps makes FindOverlapping report nothing so that only the
	// write-time constraint stands between two bookings.
	hideOverlaps bool
	// staleWrites makes the next N reservation updates lose the version race.
	staleWrites int
	// updates counts successful reservation updates.
	updates int
}

type fakeState struct {
	rooms        map[uuid.UUID]domain.Room
	reservations map[uuid.UUID]domain.Reservation
	released     map[uuid.UUID]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{state: fakeState{
		rooms:        map[uuid.UUID]domain.Room{},
		reservations: map[uuid.UUID]domain.Reservation{},
		released:     map[uuid.UUID]bool{},
	}}
}

func (st fakeState) clone() fakeState {
	c := fakeState{
		rooms:        make(map[uuid.UUID]domain.Room, len(st.rooms)),
		reservations: make(map[uuid.UUID]domain.Reservation, len(st.reservations)),
		released:     make(map[uuid.UUID]bool, len(st.released)),
	}
	for k, v := range st.rooms {
		c.rooms[k] = v
	}
	for k, v := range st.reservations {
		c.reservations[k] = cloneReservation(v)
	}
	for k, v := range st.released {
		c.released[k] = v
	}
	return c
}

func cloneReservation(r domain.Reservation) domain.Reservation {
	r.Rooms = append([]domain.RoomBinding{}, r.Rooms...)
	r.Charges = append([]domain.Charge{}, r.Charges...)
	return r
}

func (s *fakeStore) InTx(_ context.Context, fn func(repo.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	err := fn(repo.Repos{
		Rooms:        &fakeRoomRepo{s: s},
		Reservations: &fakeReservationRepo{s: s},
	})
	if err != nil {
		s.state = snapshot
	}
	return err
}

var _ repo.Transactor = (*fakeStore)(nil)

// ---- rooms -----------------------------------------------------------------

type fakeRoomRepo struct{ s *fakeStore }

func (r *fakeRoomRepo) Create(_ context.Context, room domain.Room) (domain.Room, error) {
	for _, existing := range r.s.state.rooms {
		if existing.Number == room.Number {
			return domain.Room{}, domain.ErrDuplicate
		}
	}
	room.ID = uuid.New()
	if room.Status == "" {
		room.Status = domain.RoomAvailable
	}
	room.CreatedAt = time.Now().UTC()
	room.UpdatedAt = room.CreatedAt
	r.s.state.rooms[room.ID] = room
	return room, nil
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Room, error) {
	room, ok := r.s.state.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return room, nil
}

func (r *fakeRoomRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(ids))
	for _, id := range ids {
		room, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, nil
}

func (r *fakeRoomRepo) List(_ context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(r.s.state.rooms))
	for _, room := range r.s.state.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *fakeRoomRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Room, int64, error) {
	all, _ := r.List(ctx)
	start := min(p.Offset(), len(all))
	end := min(start+p.Limit, len(all))
	return all[start:end], int64(len(all)), nil
}

func (r *fakeRoomRepo) SetStatus(_ context.Context, id uuid.UUID, status domain.RoomStatus) (domain.Room, error) {
	room, ok := r.s.state.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	room.Status = status
	room.UpdatedAt = time.Now().UTC()
	r.s.state.rooms[id] = room
	return room, nil
}

var _ repo.RoomRepo = (*fakeRoomRepo)(nil)

// ---- reservations ----------------------------------------------------------

type fakeReservationRepo struct{ s *fakeStore }

// violates reports whether binding roomID over [in, out) for reservation id
// would collide with another reservation's active binding.
func (r *fakeReservationRepo) violates(id, roomID uuid.UUID, in, out time.Time) bool {
	for otherID, other := range r.s.state.reservations {
		if otherID == id || r.s.state.released[otherID] {
			continue
		}
		if other.HasRoom(roomID) && domain.Overlaps(other.CheckIn, other.CheckOut, in, out) {
			return true
		}
	}
	return false
}

func (r *fakeReservationRepo) Create(_ context.Context, res domain.Reservation) (domain.Reservation, error) {
	if _, ok := r.s.state.reservations[res.ID]; ok {
		return domain.Reservation{}, domain.ErrDuplicate
	}
	for _, b := range res.Rooms {
		if r.violates(res.ID, b.RoomID, res.CheckIn, res.CheckOut) {
			return domain.Reservation{}, domain.ErrConflict
		}
	}
	res.Version = 1
	res.CreatedAt = time.Now().UTC()
	res.UpdatedAt = res.CreatedAt
	if res.Charges == nil {
		res.Charges = []domain.Charge{}
	}
	r.s.state.reservations[res.ID] = cloneReservation(res)
	return res, nil
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Reservation, error) {
	res, ok := r.s.state.reservations[id]
	if !ok {
		return domain.Reservation{}, domain.ErrNotFound
	}
	return cloneReservation(res), nil
}

func (r *fakeReservationRepo) FindOverlapping(_ context.Context, roomIDs []uuid.UUID, in, out time.Time, exclude *uuid.UUID) ([]domain.Reservation, error) {
	found := []domain.Reservation{}
	if r.s.hideOverlaps {
		return found, nil
	}
	for id, res := range r.s.state.reservations {
		if r.s.state.released[id] || !res.Status.Active() || (exclude != nil && id == *exclude) {
			continue
		}
		if !domain.Overlaps(res.CheckIn, res.CheckOut, in, out) {
			continue
		}
		for _, roomID := range roomIDs {
			if res.HasRoom(roomID) {
				found = append(found, cloneReservation(res))
				break
			}
		}
	}
	return found, nil
}

func (r *fakeReservationRepo) ListStays(_ context.Context, from, to time.Time) ([]domain.Reservation, error) {
	stays := []domain.Reservation{}
	for _, res := range r.s.state.reservations {
		if domain.Overlaps(res.CheckIn, res.CheckOut, from, to) {
			stays = append(stays, cloneReservation(res))
		}
	}
	sort.Slice(stays, func(i, j int) bool {
		if !stays[i].CheckIn.Equal(stays[j].CheckIn) {
			return stays[i].CheckIn.Before(stays[j].CheckIn)
		}
		return stays[i].Guest.Name < stays[j].Guest.Name
	})
	return stays, nil
}

func (r *fakeReservationRepo) Update(_ context.Context, res domain.Reservation) (domain.Reservation, error) {
	stored, ok := r.s.state.reservations[res.ID]
	if !ok {
		return domain.Reservation{}, domain.ErrNotFound
	}
	if r.s.staleWrites > 0 {
		r.s.staleWrites--
		return domain.Reservation{}, domain.ErrStaleWrite
	}
	if stored.Version != res.Version {
		return domain.Reservation{}, domain.ErrStaleWrite
	}

	// Like the SQL update, only scalar columns are written; bindings and
	// charges have their own writes.
	rooms, charges := stored.Rooms, stored.Charges
	stored = cloneReservation(res)
	stored.Rooms, stored.Charges = rooms, charges
	stored.Version++
	stored.UpdatedAt = time.Now().UTC()
	r.s.state.reservations[res.ID] = stored
	r.s.updates++

	res.Version = stored.Version
	res.UpdatedAt = stored.UpdatedAt
	return res, nil
}

func (r *fakeReservationRepo) AddRoom(_ context.Context, res domain.Reservation, b domain.RoomBinding) error {
	stored, ok := r.s.state.reservations[res.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.violates(res.ID, b.RoomID, res.CheckIn, res.CheckOut) {
		return domain.ErrConflict
	}
	stored.Rooms = append(stored.Rooms, b)
	r.s.state.reservations[res.ID] = stored
	return nil
}

func (r *fakeReservationRepo) ReleaseRooms(_ context.Context, id uuid.UUID) error {
	r.s.state.released[id] = true
	return nil
}

func (r *fakeReservationRepo) AddCharge(_ context.Context, id uuid.UUID, c domain.Charge) (domain.Charge, error) {
	stored, ok := r.s.state.reservations[id]
	if !ok {
		return domain.Charge{}, domain.ErrNotFound
	}
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()
	stored.Charges = append(stored.Charges, c)
	r.s.state.reservations[id] = stored
	return c, nil
}

var _ repo.ReservationRepo = (*fakeReservationRepo)(nil)

// ---- collaborators -------------------------------------------------------

// recordingNotifier remembers the topics it was asked to publish.
type recordingNotifier struct {
	mu     sync.Mutex
	topics []notify.Topic
	msgs   []any
}

func (n *recordingNotifier) Notify(_ context.Context, topic notify.Topic, msg any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.topics = append(n.topics, topic)
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) Topics() []notify.Topic {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Topic{}, n.topics...)
}

var _ service.Notifier = (*recordingNotifier)(nil)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// ---- fixture ---------------------------------------------------------------

type fixture struct {
	store    *fakeStore
	clock    *fakeClock
	notifier *recordingNotifier

	reservations *service.ReservationService
	ledger       *service.LedgerService
	rooms        *service.RoomService
	availability *service.AvailabilityService
	manifest     *service.ManifestService
}

// bookingNow is the default wall clock: well before every stay used in tests.
var bookingNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFakeStore()
	clock := &fakeClock{t: bookingNow}
	notifier := &recordingNotifier{}

	cfg := service.DefaultSettings()
	cfg.Now = clock.Now
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		store:        store,
		clock:        clock,
		notifier:     notifier,
		reservations: service.NewReservationService(store, notifier, log, cfg),
		ledger:       service.NewLedgerService(store, cfg),
		rooms:        service.NewRoomService(store, cfg),
		availability: service.NewAvailabilityService(store),
		manifest:     service.NewManifestService(store),
	}
}

func (f *fixture) seedRoom(t *testing.T, number string, rate int64) domain.Room {
	t.Helper()
	room, err := f.rooms.Create(context.Background(), domain.Room{
		Number:      number,
		Type:        domain.RoomDouble,
		NightlyRate: decimal.NewFromInt(rate),
		Capacity:    2,
	})
	require.NoError(t, err)
	return room
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(in, out time.Time, roomIDs ...uuid.UUID) domain.NewReservation {
	return domain.NewReservation{
		Guest:    domain.GuestInfo{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+44 20 0000"},
		RoomIDs:  roomIDs,
		CheckIn:  in,
		CheckOut: out,
		Guests:   domain.GuestCount{Adults: 2},
	}
}

// book creates a reservation and fails the test on error.
func (f *fixture) book(t *testing.T, in, out time.Time, roomIDs ...uuid.UUID) domain.Reservation {
	t.Helper()
	res, err := f.reservations.Create(context.Background(), booking(in, out, roomIDs...))
	require.NoError(t, err)
	return res
}
