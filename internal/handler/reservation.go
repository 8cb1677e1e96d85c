package handler

import (
	"context"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/handler/gen"
)

const reservationNotFound = "reservation not found"

// CreateReservation handles POST /reservations.
func (s *Server) CreateReservation(ctx context.Context, req gen.CreateReservationRequestObject) (gen.CreateReservationResponseObject, error) {
	if body, bad := s.invalid(req.Body); bad {
		return gen.CreateReservation422JSONResponse(body), nil
	}
	if req.Body.CheckIn.Time.IsZero() || req.Body.CheckOut.Time.IsZero() {
		return gen.CreateReservation422JSONResponse(requestBody("check_in and check_out are required")), nil
	}

	created, err := s.reservations.Create(ctx, requestToNewReservation(*req.Body))
	if err != nil {
		status, body, _ := classify(err, "room not found")
		switch status {
		case http.StatusNotFound:
			return gen.CreateReservation404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.CreateReservation409JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.CreateReservation422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.CreateReservation201JSONResponse(reservationToResponse(created)), nil
}

// GetReservation handles GET /reservations/{id}.
func (s *Server) GetReservation(ctx context.Context, req gen.GetReservationRequestObject) (gen.GetReservationResponseObject, error) {
	res, err := s.reservations.Get(ctx, req.Id)
	if err != nil {
		if status, body, _ := classify(err, reservationNotFound); status == http.StatusNotFound {
			return gen.GetReservation404JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.GetReservation200JSONResponse(reservationToResponse(res)), nil
}

// ConfirmReservation handles POST /reservations/{id}/confirm.
func (s *Server) ConfirmReservation(ctx context.Context, req gen.ConfirmReservationRequestObject) (gen.ConfirmReservationResponseObject, error) {
	res, err := s.reservations.Confirm(ctx, req.Id)
	if err != nil {
		status, body, _ := classify(err, reservationNotFound)
		switch status {
		case http.StatusNotFound:
			return gen.ConfirmReservation404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.ConfirmReservation409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.ConfirmReservation200JSONResponse(reservationToResponse(res)), nil
}

// AllocateRoom handles POST /reservations/{id}/allocate.
func (s *Server) AllocateRoom(ctx context.Context, req gen.AllocateRoomRequestObject) (gen.AllocateRoomResponseObject, error) {
	if body, bad := s.invalid(req.Body); bad {
		return gen.AllocateRoom422JSONResponse(body), nil
	}
	res, err := s.reservations.AllocateRoom(ctx, req.Id, req.Body.RoomId)
	if err != nil {
		status, body, _ := classify(err, "reservation or room not found")
		switch status {
		case http.StatusNotFound:
			return gen.AllocateRoom404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.AllocateRoom409JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.AllocateRoom422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.AllocateRoom200JSONResponse(reservationToResponse(res)), nil
}

// CheckIn handles POST /reservations/{id}/check-in.
func (s *Server) CheckIn(ctx context.Context, req gen.CheckInRequestObject) (gen.CheckInResponseObject, error) {
	res, err := s.reservations.CheckIn(ctx, req.Id)
	if err != nil {
		status, body, _ := classify(err, reservationNotFound)
		switch status {
		case http.StatusNotFound:
			return gen.CheckIn404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.CheckIn409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.CheckIn200JSONResponse(reservationToResponse(res)), nil
}

// CheckOut handles POST /reservations/{id}/check-out.
// The response carries the finalized bill alongside the reservation.
func (s *Server) CheckOut(ctx context.Context, req gen.CheckOutRequestObject) (gen.CheckOutResponseObject, error) {
	res, bill, err := s.reservations.CheckOut(ctx, req.Id)
	if err != nil {
		status, body, _ := classify(err, reservationNotFound)
		switch status {
		case http.StatusNotFound:
			return gen.CheckOut404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.CheckOut409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.CheckOut200JSONResponse{
		Reservation: reservationToResponse(res),
		Bill:        billToResponse(bill),
	}, nil
}

// CancelReservation handles POST /reservations/{id}/cancel.
// The body is optional; an empty request cancels without a reason.
func (s *Server) CancelReservation(ctx context.Context, req gen.CancelReservationRequestObject) (gen.CancelReservationResponseObject, error) {
	var reason string
	if req.Body != nil {
		if body, bad := s.invalid(req.Body); bad {
			return gen.CancelReservation422JSONResponse(body), nil
		}
		reason = deref(req.Body.Reason)
	}
	res, refund, err := s.reservations.Cancel(ctx, req.Id, reason)
	if err != nil {
		status, body, _ := classify(err, reservationNotFound)
		switch status {
		case http.StatusNotFound:
			return gen.CancelReservation404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.CancelReservation409JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.CancelReservation422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.CancelReservation200JSONResponse{
		Reservation:  reservationToResponse(res),
		RefundAmount: refund,
	}, nil
}

// GetCancellationQuote handles GET /reservations/{id}/cancellation.
// It reports what cancelling now would refund without changing anything.
func (s *Server) GetCancellationQuote(ctx context.Context, req gen.GetCancellationQuoteRequestObject) (gen.GetCancellationQuoteResponseObject, error) {
	d, err := s.reservations.CancellationQuote(ctx, req.Id)
	if err != nil {
		if status, body, _ := classify(err, reservationNotFound); status == http.StatusNotFound {
			return gen.GetCancellationQuote404JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.GetCancellationQuote200JSONResponse{
		Cancellable:       d.Cancellable,
		RefundAmount:      d.RefundAmount,
		HoursUntilCheckIn: d.HoursUntilCheckIn,
	}, nil
}

// MarkNoShow handles POST /reservations/{id}/no-show.
func (s *Server) MarkNoShow(ctx context.Context, req gen.MarkNoShowRequestObject) (gen.MarkNoShowResponseObject, error) {
	res, err := s.reservations.MarkNoShow(ctx, req.Id)
	if err != nil {
		status, body, _ := classify(err, reservationNotFound)
		switch status {
		case http.StatusNotFound:
			return gen.MarkNoShow404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.MarkNoShow409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.MarkNoShow200JSONResponse(reservationToResponse(res)), nil
}

// UpdatePayment handles PUT /reservations/{id}/payment.
func (s *Server) UpdatePayment(ctx context.Context, req gen.UpdatePaymentRequestObject) (gen.UpdatePaymentResponseObject, error) {
	if body, bad := s.invalid(req.Body); bad {
		return gen.UpdatePayment422JSONResponse(body), nil
	}
	upd := domain.PaymentUpdate{
		Status: domain.PaymentStatus(req.Body.Status),
		Method: deref(req.Body.Method),
	}
	if req.Body.PaidAmount != nil {
		upd.PaidAmount = *req.Body.PaidAmount
	}
	res, err := s.reservations.UpdatePayment(ctx, req.Id, upd)
	if err != nil {
		status, body, _ := classify(err, reservationNotFound)
		switch status {
		case http.StatusNotFound:
			return gen.UpdatePayment404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.UpdatePayment409JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.UpdatePayment422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.UpdatePayment200JSONResponse(reservationToResponse(res)), nil
}

// AddCharge handles POST /reservations/{id}/charges.
func (s *Server) AddCharge(ctx context.Context, req gen.AddChargeRequestObject) (gen.AddChargeResponseObject, error) {
	if body, bad := s.invalid(req.Body); bad {
		return gen.AddCharge422JSONResponse(body), nil
	}
	res, err := s.ledger.AddCharge(ctx, req.Id, domain.NewCharge{
		Description: req.Body.Description,
		Quantity:    req.Body.Quantity,
		UnitPrice:   req.Body.UnitPrice,
		Category:    deref(req.Body.Category),
		Author:      deref(req.Body.Author),
	})
	if err != nil {
		status, body, _ := classify(err, reservationNotFound)
		switch status {
		case http.StatusNotFound:
			return gen.AddCharge404JSONResponse(body), nil
		case http.StatusConflict:
			return gen.AddCharge409JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.AddCharge422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.AddCharge201JSONResponse(reservationToResponse(res)), nil
}

// GetBill handles GET /reservations/{id}/bill.
func (s *Server) GetBill(ctx context.Context, req gen.GetBillRequestObject) (gen.GetBillResponseObject, error) {
	bill, err := s.ledger.Bill(ctx, req.Id)
	if err != nil {
		if status, body, _ := classify(err, reservationNotFound); status == http.StatusNotFound {
			return gen.GetBill404JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.GetBill200JSONResponse(billToResponse(bill)), nil
}

// --- mapping helpers --------------------------------------------------------

func requestToNewReservation(body gen.CreateReservationRequest) domain.NewReservation {
	in := domain.NewReservation{
		ID: body.Id,
		Guest: domain.GuestInfo{
			Name:  body.Guest.Name,
			Email: body.Guest.Email,
			Phone: deref(body.Guest.Phone),
		},
		CheckIn:         body.CheckIn.Time,
		CheckOut:        body.CheckOut.Time,
		Guests:          domain.GuestCount{Adults: body.Adults, Children: deref(body.Children)},
		SpecialRequests: deref(body.SpecialRequests),
	}
	if body.RoomIds != nil {
		in.RoomIDs = *body.RoomIds
	}
	if body.Discount != nil {
		in.Discount = *body.Discount
	}
	return in
}

// reservationToResponse converts a domain.Reservation into its wire form.
// Rooms and Charges are always arrays, never null.
func reservationToResponse(res domain.Reservation) gen.Reservation {
	rooms := make([]gen.RoomBinding, len(res.Rooms))
	for i, b := range res.Rooms {
		rooms[i] = gen.RoomBinding{
			RoomId:      b.RoomID,
			RoomNumber:  b.RoomNumber,
			RoomType:    gen.RoomType(b.RoomType),
			NightlyRate: b.NightlyRate,
			BoundAt:     b.BoundAt,
		}
	}
	charges := make([]gen.Charge, len(res.Charges))
	for i, c := range res.Charges {
		charges[i] = gen.Charge{
			Id:          c.ID,
			Description: c.Description,
			Quantity:    c.Quantity,
			UnitPrice:   c.UnitPrice,
			Amount:      c.Amount,
			Category:    c.Category,
			Author:      c.Author,
			CreatedAt:   c.CreatedAt,
		}
	}
	return gen.Reservation{
		Id: res.ID,
		Guest: gen.Guest{
			Name:  res.Guest.Name,
			Email: res.Guest.Email,
			Phone: optional(res.Guest.Phone),
		},
		Rooms:              rooms,
		PrimaryRoomId:      res.PrimaryRoomID,
		CheckIn:            openapi_types.Date{Time: res.CheckIn},
		CheckOut:           openapi_types.Date{Time: res.CheckOut},
		Nights:             res.Nights(),
		Status:             gen.ReservationStatus(res.Status),
		PaymentStatus:      gen.PaymentStatus(res.PaymentStatus),
		PaymentMethod:      res.PaymentMethod,
		PaidAmount:         res.PaidAmount,
		Adults:             res.Guests.Adults,
		Children:           res.Guests.Children,
		SpecialRequests:    res.SpecialRequests,
		Charges:            charges,
		Discount:           res.Discount,
		TotalPrice:         res.TotalPrice,
		RefundAmount:       res.RefundAmount,
		CancellationReason: res.CancellationReason,
		ActualCheckIn:      res.ActualCheckIn,
		ActualCheckOut:     res.ActualCheckOut,
		CancelledAt:        res.CancelledAt,
		Version:            res.Version,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}
}

func billToResponse(b domain.Bill) gen.Bill {
	items := make([]gen.BillItem, len(b.Items))
	for i, it := range b.Items {
		items[i] = gen.BillItem{
			Description: it.Description,
			Category:    it.Category,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		}
	}
	return gen.Bill{
		ReservationId: b.ReservationID,
		Items:         items,
		Subtotal:      b.Subtotal,
		Tax:           b.Tax,
		Discount:      b.Discount,
		Total:         b.Total,
		FinalizedAt:   b.FinalizedAt,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// optional maps "" to an omitted field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
