package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of a CSV manifest.
var csvHeaders = []string{
	"reservation_id", "guest_name", "guest_email", "check_in", "check_out",
	"nights", "guests", "status", "payment_status", "total_price",
	"room_number", "room_type", "actual_check_in", "actual_check_out",
}

// GetManifest handles GET /manifest?from=&to=[&format=csv].
// It returns one row per bound room for every stay touching [from, to).
// JSON is the default; format=csv returns text/csv.
func (s *Server) GetManifest(ctx context.Context, req gen.GetManifestRequestObject) (gen.GetManifestResponseObject, error) {
	format := gen.GetManifestParamsFormatJson
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	if format != gen.GetManifestParamsFormatJson && format != gen.GetManifestParamsFormatCsv {
		return gen.GetManifest422JSONResponse(requestBody("format must be json or csv")), nil
	}

	rows, err := s.manifest.Manifest(ctx, req.Params.From.Time, req.Params.To.Time)
	if err != nil {
		if status, body, _ := classify(err, "not found"); status == http.StatusUnprocessableEntity {
			return gen.GetManifest422JSONResponse(body), nil
		}
		return nil, err
	}

	if format == gen.GetManifestParamsFormatCsv {
		buf := encodeCSV(rows)
		return gen.GetManifest200TextcsvResponse{Body: buf, ContentLength: int64(buf.Len())}, nil
	}
	out := make(gen.GetManifest200JSONResponse, 0, len(rows))
	for _, row := range rows {
		r, err := manifestRowToResponse(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// encodeCSV encodes rows as CSV with a header line.
func encodeCSV(rows []domain.ManifestRow) *bytes.Buffer {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(manifestRowToCSVRecord(row))
	}
	cw.Flush()
	return &buf
}

func manifestRowToResponse(r domain.ManifestRow) (gen.ManifestRow, error) {
	id, err := uuid.Parse(r.ReservationID)
	if err != nil {
		return gen.ManifestRow{}, fmt.Errorf("handler.manifestRowToResponse: %w", err)
	}
	checkIn, err := time.Parse(domain.DateLayout, r.CheckIn)
	if err != nil {
		return gen.ManifestRow{}, fmt.Errorf("handler.manifestRowToResponse: %w", err)
	}
	checkOut, err := time.Parse(domain.DateLayout, r.CheckOut)
	if err != nil {
		return gen.ManifestRow{}, fmt.Errorf("handler.manifestRowToResponse: %w", err)
	}
	row := gen.ManifestRow{
		ReservationId:  id,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		CheckIn:        openapi_types.Date{Time: checkIn},
		CheckOut:       openapi_types.Date{Time: checkOut},
		Nights:         r.Nights,
		Guests:         r.Guests,
		Status:         gen.ReservationStatus(r.Status),
		PaymentStatus:  gen.PaymentStatus(r.PaymentStatus),
		TotalPrice:     r.TotalPrice,
		RoomNumber:     optional(r.RoomNumber),
		ActualCheckIn:  r.ActualCheckIn,
		ActualCheckOut: r.ActualCheckOut,
	}
	if r.RoomType != "" {
		rt := gen.RoomType(r.RoomType)
		row.RoomType = &rt
	}
	return row, nil
}

// manifestRowToCSVRecord encodes a row as a flat string slice.
// Nil time pointers are encoded as empty strings.
func manifestRowToCSVRecord(r domain.ManifestRow) []string {
	return []string{
		r.ReservationID,
		r.GuestName,
		r.GuestEmail,
		r.CheckIn,
		r.CheckOut,
		strconv.Itoa(r.Nights),
		strconv.Itoa(r.Guests),
		string(r.Status),
		string(r.PaymentStatus),
		r.TotalPrice.StringFixed(2),
		r.RoomNumber,
		string(r.RoomType),
		formatOptionalTime(r.ActualCheckIn),
		formatOptionalTime(r.ActualCheckOut),
	}
}

// formatOptionalTime returns the RFC3339 representation of t, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
