package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/handler/gen"
)

// ---- POST /rooms -----------------------------------------------------------

func TestCreateRoom_201(t *testing.T) {
	fixture := roomFixture()
	svc := services{rooms: &mockRoomServicer{
		create: func(_ context.Context, rm domain.Room) (domain.Room, error) {
			assert.Equal(t, "101", rm.Number)
			assert.Equal(t, domain.RoomDouble, rm.Type)
			assert.True(t, rm.NightlyRate.Equal(decimal.NewFromInt(150)))
			assert.Equal(t, 2, rm.Capacity)
			return fixture, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/rooms", map[string]any{
		"number":       "101",
		"type":         "double",
		"nightly_rate": "150.00",
		"capacity":     2,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[gen.Room](t, rec)
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, gen.RoomStatusAvailable, resp.Status)
}

func TestCreateRoom_422_UnknownType(t *testing.T) {
	svc := services{rooms: &mockRoomServicer{}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/rooms", map[string]any{
		"number": "101", "type": "penthouse", "nightly_rate": "150", "capacity": 2,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec)
	assert.Contains(t, resp.Error.Message, "type must be one of")
}

func TestCreateRoom_409_DuplicateNumber(t *testing.T) {
	svc := services{rooms: &mockRoomServicer{
		create: func(context.Context, domain.Room) (domain.Room, error) {
			return domain.Room{}, fmt.Errorf("service.RoomService.Create: %w: room 101 already exists", domain.ErrConflict)
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/rooms", map[string]any{
		"number": "101", "type": "double", "nightly_rate": "150", "capacity": 2,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "room 101 already exists", resp.Error.Message)
}

func TestCreateRoom_409_RawDuplicate(t *testing.T) {
	svc := services{rooms: &mockRoomServicer{
		create: func(context.Context, domain.Room) (domain.Room, error) {
			return domain.Room{}, fmt.Errorf("repo.RoomRepo.Create: %w", domain.ErrDuplicate)
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/rooms", map[string]any{
		"number": "101", "type": "double", "nightly_rate": "150", "capacity": 2,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", decode[gen.ErrorResponse](t, rec).Error.Code)
}

// ---- GET /rooms ------------------------------------------------------------

func TestListRooms_200_Paged(t *testing.T) {
	var got domain.PaginationParams
	svc := services{rooms: &mockRoomServicer{
		list: func(_ context.Context, p domain.PaginationParams) ([]domain.Room, int64, error) {
			got = p
			return []domain.Room{roomFixture(), roomFixture()}, 7, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodGet, "/rooms?page=2&limit=2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 2}, got)
	resp := decode[gen.RoomList](t, rec)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, gen.Pagination{Page: 2, Limit: 2, Total: 7, HasNext: true}, resp.Pagination)
}

func TestListRooms_200_Empty(t *testing.T) {
	svc := services{rooms: &mockRoomServicer{
		list: func(context.Context, domain.PaginationParams) ([]domain.Room, int64, error) {
			return nil, 0, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodGet, "/rooms", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Must be a JSON array, not null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListRooms_422_BadPage(t *testing.T) {
	svc := services{rooms: &mockRoomServicer{}}
	rec := serve(t, newHTTPHandler(svc), http.MethodGet, "/rooms?page=two", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /rooms/{id} -------------------------------------------------------

func TestGetRoom_404(t *testing.T) {
	svc := services{rooms: &mockRoomServicer{
		getByID: func(context.Context, uuid.UUID) (domain.Room, error) {
			return domain.Room{}, domain.ErrNotFound
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodGet, "/rooms/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "room not found", decode[gen.ErrorResponse](t, rec).Error.Message)
}

// ---- PUT /rooms/{id}/status ------------------------------------------------

func TestSetRoomStatus_200(t *testing.T) {
	fixture := roomFixture()
	fixture.Status = domain.RoomReserved
	svc := services{rooms: &mockRoomServicer{
		setStatus: func(_ context.Context, id uuid.UUID, st domain.RoomStatus) (domain.Room, error) {
			assert.Equal(t, fixture.ID, id)
			assert.Equal(t, domain.RoomReserved, st)
			return fixture, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPut, "/rooms/"+fixture.ID.String()+"/status",
		map[string]any{"status": "reserved"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gen.RoomStatusReserved, decode[gen.Room](t, rec).Status)
}

func TestSetRoomStatus_409_HeldToday(t *testing.T) {
	svc := services{rooms: &mockRoomServicer{
		setStatus: func(context.Context, uuid.UUID, domain.RoomStatus) (domain.Room, error) {
			return domain.Room{}, fmt.Errorf("service.RoomService.SetStatus: %w: room 101 is held by an active reservation", domain.ErrConflict)
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPut, "/rooms/"+uuid.NewString()+"/status",
		map[string]any{"status": "available"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}
