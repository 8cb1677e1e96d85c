package handler

import (
	"context"
	"net/http"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/handler/gen"
)

const roomNotFound = "room not found"

// CreateRoom handles POST /rooms.
func (s *Server) CreateRoom(ctx context.Context, req gen.CreateRoomRequestObject) (gen.CreateRoomResponseObject, error) {
	if body, bad := s.invalid(req.Body); bad {
		return gen.CreateRoom422JSONResponse(body), nil
	}
	created, err := s.rooms.Create(ctx, domain.Room{
		Number:      req.Body.Number,
		Type:        domain.RoomType(req.Body.Type),
		NightlyRate: req.Body.NightlyRate,
		Capacity:    req.Body.Capacity,
	})
	if err != nil {
		status, body, _ := classify(err, roomNotFound)
		switch status {
		case http.StatusConflict:
			return gen.CreateRoom409JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.CreateRoom422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.CreateRoom201JSONResponse(roomToResponse(created)), nil
}

// ListRooms handles GET /rooms.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=50, max=200).
func (s *Server) ListRooms(ctx context.Context, req gen.ListRoomsRequestObject) (gen.ListRoomsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	rooms, total, err := s.rooms.List(ctx, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Room, len(rooms))
	for i, rm := range rooms {
		data[i] = roomToResponse(rm)
	}
	return gen.ListRooms200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:    params.Page,
			Limit:   params.Limit,
			Total:   int(total),
			HasNext: params.HasNext(total),
		},
	}, nil
}

// GetRoom handles GET /rooms/{id}.
func (s *Server) GetRoom(ctx context.Context, req gen.GetRoomRequestObject) (gen.GetRoomResponseObject, error) {
	room, err := s.rooms.GetByID(ctx, req.Id)
	if err != nil {
		if status, body, _ := classify(err, roomNotFound); status == http.StatusNotFound {
			return gen.GetRoom404JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.GetRoom200JSONResponse(roomToResponse(room)), nil
}

// SetRoomStatus handles PUT /rooms/{id}/status.
func (s *Server) SetRoomStatus(ctx context.Context, req gen.SetRoomStatusRequestObject) (gen.SetRoomStatusResponseObject, error) {
	if body, bad := s.invalid(req.Body); bad {
		return gen.SetRoomStatus422JSONResponse(body), nil
	}
	room, err := s.rooms.SetStatus(ctx, req.Id, domain.RoomStatus(req.Body.Status))
	if err != nil {
		status, body, _ := classify(err, roomNotFound)
		switch status {
		case http.StatusNotFound:
			return gen.SetRoomStatus404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.SetRoomStatus409JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.SetRoomStatus422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.SetRoomStatus200JSONResponse(roomToResponse(room)), nil
}

func roomToResponse(rm domain.Room) gen.Room {
	return gen.Room{
		Id:          rm.ID,
		Number:      rm.Number,
		Type:        gen.RoomType(rm.Type),
		NightlyRate: rm.NightlyRate,
		Capacity:    rm.Capacity,
		Status:      gen.RoomStatus(rm.Status),
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}
