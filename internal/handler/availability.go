package handler

import (
	"context"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hotel-reservations/backend/internal/handler/gen"
)

// GetAvailability handles GET /availability?check_in=&check_out=[&room_ids=a,b].
// Without room_ids every room in the catalog is considered.
func (s *Server) GetAvailability(ctx context.Context, req gen.GetAvailabilityRequestObject) (gen.GetAvailabilityResponseObject, error) {
	p := req.Params
	var ids []openapi_types.UUID
	if p.RoomIds != nil {
		ids = *p.RoomIds
	}
	available, err := s.availability.CheckAvailableRooms(ctx, ids, p.CheckIn.Time, p.CheckOut.Time)
	if err != nil {
		status, body, _ := classify(err, "room not found")
		switch status {
		case http.StatusNotFound:
			return gen.GetAvailability404JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.GetAvailability422JSONResponse(body), nil
		}
		return nil, err
	}
	if available == nil {
		available = []openapi_types.UUID{}
	}
	return gen.GetAvailability200JSONResponse{
		CheckIn:          p.CheckIn,
		CheckOut:         p.CheckOut,
		AvailableRoomIds: available,
	}, nil
}
