package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/handler/gen"
)

func createBody() map[string]any {
	return map[string]any{
		"guest":     map[string]any{"name": "Ada Lovelace", "email": "ada@example.com"},
		"room_ids":  []string{uuid.NewString()},
		"check_in":  "2025-03-10",
		"check_out": "2025-03-12",
		"adults":    2,
	}
}

// ---- POST /reservations ----------------------------------------------------

func TestCreateReservation_201(t *testing.T) {
	fixture := reservationFixture()
	var got domain.NewReservation
	svc := services{reservations: &mockReservationServicer{
		create: func(_ context.Context, in domain.NewReservation) (domain.Reservation, error) {
			got = in
			return fixture, nil
		},
	}}

	body := createBody()
	body["discount"] = "20.00"
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[gen.Reservation](t, rec)
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, gen.ReservationStatusPending, resp.Status)
	assert.Len(t, resp.Rooms, 1)
	assert.NotNil(t, resp.Charges, "charges must encode as an array")

	assert.Equal(t, day(2025, 3, 10), got.CheckIn)
	assert.Equal(t, day(2025, 3, 12), got.CheckOut)
	assert.Equal(t, 2, got.Guests.Adults)
	assert.True(t, got.Discount.Equal(decimal.NewFromInt(20)))
	assert.Len(t, got.RoomIDs, 1)
}

func TestCreateReservation_IdempotencyKeyPassedThrough(t *testing.T) {
	key := uuid.New()
	svc := services{reservations: &mockReservationServicer{
		create: func(_ context.Context, in domain.NewReservation) (domain.Reservation, error) {
			require.NotNil(t, in.ID)
			assert.Equal(t, key, *in.ID)
			return reservationFixture(), nil
		},
	}}

	body := createBody()
	body["id"] = key.String()
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateReservation_422_RequestValidation(t *testing.T) {
	cases := map[string]func(b map[string]any){
		"missing guest name": func(b map[string]any) { b["guest"] = map[string]any{"email": "ada@example.com"} },
		"bad email":          func(b map[string]any) { b["guest"] = map[string]any{"name": "Ada", "email": "nope"} },
		"no adults":          func(b map[string]any) { b["adults"] = 0 },
		"missing check_out":  func(b map[string]any) { delete(b, "check_out") },
		"bad date":           func(b map[string]any) { b["check_in"] = "10/03/2025" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc := services{reservations: &mockReservationServicer{
				create: func(context.Context, domain.NewReservation) (domain.Reservation, error) {
					t.Fatal("service must not be called")
					return domain.Reservation{}, nil
				},
			}}
			body := createBody()
			mutate(body)
			rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations", body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			resp := decode[gen.ErrorResponse](t, rec)
			assert.Equal(t, "validation_error", resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestCreateReservation_422_FieldNamesUseJSON(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{}}
	body := createBody()
	body["guest"] = map[string]any{"name": "Ada", "email": "nope"}

	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations", body)

	resp := decode[gen.ErrorResponse](t, rec)
	assert.Contains(t, resp.Error.Message, "guest.email must be a valid email")
}

func TestCreateReservation_422_EmptyBody(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "request body is required", resp.Error.Message)
}

func TestCreateReservation_422_ServiceValidation(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		create: func(context.Context, domain.NewReservation) (domain.Reservation, error) {
			return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w: check-out must be after check-in", domain.ErrValidation)
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations", createBody())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "check-out must be after check-in", resp.Error.Message)
}

func TestCreateReservation_409_Conflict(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		create: func(context.Context, domain.NewReservation) (domain.Reservation, error) {
			return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", &domain.ConflictError{
				RoomNumbers: []string{"101"},
				CheckIn:     day(2025, 3, 10),
				CheckOut:    day(2025, 3, 12),
			})
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations", createBody())

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "conflict", resp.Error.Code)
	require.NotNil(t, resp.Error.Rooms)
	assert.Equal(t, []string{"101"}, *resp.Error.Rooms)
	assert.Equal(t, "room 101 is not available for 2025-03-10 to 2025-03-12", resp.Error.Message)
}

func TestCreateReservation_404_UnknownRoom(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		create: func(context.Context, domain.NewReservation) (domain.Reservation, error) {
			return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", domain.ErrNotFound)
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations", createBody())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateReservation_500_HidesInternalError(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		create: func(context.Context, domain.NewReservation) (domain.Reservation, error) {
			return domain.Reservation{}, errors.New("pq: connection reset")
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations", createBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

// ---- GET /reservations/{id} ------------------------------------------------

func TestGetReservation_200(t *testing.T) {
	fixture := reservationFixture()
	svc := services{reservations: &mockReservationServicer{
		get: func(_ context.Context, id uuid.UUID) (domain.Reservation, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodGet, "/reservations/"+fixture.ID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[gen.Reservation](t, rec)
	assert.Equal(t, "2025-03-10", resp.CheckIn.Time.Format("2006-01-02"))
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(300)))
}

func TestGetReservation_404(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		get: func(context.Context, uuid.UUID) (domain.Reservation, error) {
			return domain.Reservation{}, domain.ErrNotFound
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodGet, "/reservations/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "not_found", resp.Error.Code)
	assert.Equal(t, "reservation not found", resp.Error.Message)
}

func TestGetReservation_422_BadID(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{}}
	rec := serve(t, newHTTPHandler(svc), http.MethodGet, "/reservations/not-a-uuid", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- lifecycle -------------------------------------------------------------

func TestTransitions_409_InvalidState(t *testing.T) {
	stateErr := func(tr domain.Transition) error {
		return fmt.Errorf("service: %w", &domain.StateError{Transition: tr, Current: domain.StatusCheckedOut})
	}
	m := &mockReservationServicer{
		confirm: func(context.Context, uuid.UUID) (domain.Reservation, error) {
			return domain.Reservation{}, stateErr(domain.TransitionConfirm)
		},
		checkIn: func(context.Context, uuid.UUID) (domain.Reservation, error) {
			return domain.Reservation{}, stateErr(domain.TransitionCheckIn)
		},
		checkOut: func(context.Context, uuid.UUID) (domain.Reservation, domain.Bill, error) {
			return domain.Reservation{}, domain.Bill{}, stateErr(domain.TransitionCheckOut)
		},
		cancel: func(context.Context, uuid.UUID, string) (domain.Reservation, decimal.Decimal, error) {
			return domain.Reservation{}, decimal.Zero, stateErr(domain.TransitionCancel)
		},
		markNoShow: func(context.Context, uuid.UUID) (domain.Reservation, error) {
			return domain.Reservation{}, stateErr(domain.TransitionNoShow)
		},
	}
	h := newHTTPHandler(services{reservations: m})
	id := uuid.NewString()

	cases := []struct {
		path       string
		transition string
	}{
		{"/confirm", "confirm"},
		{"/check-in", "check-in"},
		{"/check-out", "check-out"},
		{"/cancel", "cancel"},
		{"/no-show", "no-show"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := serve(t, h, http.MethodPost, "/reservations/"+id+tc.path, nil)

			assert.Equal(t, http.StatusConflict, rec.Code)
			resp := decode[gen.ErrorResponse](t, rec)
			assert.Equal(t, "invalid_state", resp.Error.Code)
			require.NotNil(t, resp.Error.CurrentStatus)
			require.NotNil(t, resp.Error.Transition)
			assert.Equal(t, gen.ReservationStatusCheckedOut, *resp.Error.CurrentStatus)
			assert.Equal(t, tc.transition, *resp.Error.Transition)
		})
	}
}

func TestConfirm_200(t *testing.T) {
	fixture := reservationFixture()
	fixture.Status = domain.StatusConfirmed
	svc := services{reservations: &mockReservationServicer{
		confirm: func(context.Context, uuid.UUID) (domain.Reservation, error) { return fixture, nil },
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+fixture.ID.String()+"/confirm", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gen.ReservationStatusConfirmed, decode[gen.Reservation](t, rec).Status)
}

func TestAllocateRoom_200(t *testing.T) {
	fixture := reservationFixture()
	roomID := uuid.New()
	svc := services{reservations: &mockReservationServicer{
		allocateRoom: func(_ context.Context, id, got uuid.UUID) (domain.Reservation, error) {
			assert.Equal(t, fixture.ID, id)
			assert.Equal(t, roomID, got)
			return fixture, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+fixture.ID.String()+"/allocate",
		map[string]any{"room_id": roomID.String()})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAllocateRoom_422_MissingRoom(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+uuid.NewString()+"/allocate", map[string]any{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckIn_409_NoRoom(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		checkIn: func(context.Context, uuid.UUID) (domain.Reservation, error) {
			return domain.Reservation{}, &domain.StateError{
				Transition: domain.TransitionCheckIn,
				Current:    domain.StatusConfirmed,
				Reason:     "no room allocated",
			}
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+uuid.NewString()+"/check-in", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "cannot check-in reservation in status confirmed: no room allocated", resp.Error.Message)
}

func TestCheckOut_200_ReturnsBill(t *testing.T) {
	fixture := reservationFixture()
	fixture.Status = domain.StatusCheckedOut
	bill := domain.NewBill(fixture, decimal.RequireFromString("0.10"), time.Now().UTC())
	svc := services{reservations: &mockReservationServicer{
		checkOut: func(context.Context, uuid.UUID) (domain.Reservation, domain.Bill, error) {
			return fixture, bill, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+fixture.ID.String()+"/check-out", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[gen.CheckOutResponse](t, rec)
	assert.Equal(t, gen.ReservationStatusCheckedOut, resp.Reservation.Status)
	assert.Equal(t, fixture.ID, resp.Bill.ReservationId)
	assert.True(t, resp.Bill.Subtotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, resp.Bill.Tax.Equal(decimal.NewFromInt(30)))
	assert.True(t, resp.Bill.Total.Equal(decimal.NewFromInt(330)))
	require.Len(t, resp.Bill.Items, 1)
	assert.Equal(t, "lodging", resp.Bill.Items[0].Category)
}

func TestCancel_200_WithReason(t *testing.T) {
	fixture := reservationFixture()
	fixture.Status = domain.StatusCancelled
	svc := services{reservations: &mockReservationServicer{
		cancel: func(_ context.Context, _ uuid.UUID, reason string) (domain.Reservation, decimal.Decimal, error) {
			assert.Equal(t, "change of plans", reason)
			return fixture, decimal.RequireFromString("150"), nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+fixture.ID.String()+"/cancel",
		map[string]any{"reason": "change of plans"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[gen.CancelResponse](t, rec)
	assert.True(t, resp.RefundAmount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, gen.ReservationStatusCancelled, resp.Reservation.Status)
}

func TestCancel_200_NoBody(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		cancel: func(_ context.Context, _ uuid.UUID, reason string) (domain.Reservation, decimal.Decimal, error) {
			assert.Empty(t, reason)
			return reservationFixture(), decimal.Zero, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+uuid.NewString()+"/cancel", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancel_200_ChunkedEmptyBody(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		cancel: func(_ context.Context, _ uuid.UUID, reason string) (domain.Reservation, decimal.Decimal, error) {
			assert.Empty(t, reason)
			return reservationFixture(), decimal.Zero, nil
		},
	}}
	req := httptest.NewRequest(http.MethodPost, "/reservations/"+uuid.NewString()+"/cancel", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1 // sent with Transfer-Encoding: chunked
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancel_422_MalformedBody(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+uuid.NewString()+"/cancel", `{"reason":`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decode[gen.ErrorResponse](t, rec).Error.Code)
}

func TestCancellationQuote_200(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		cancellationQuote: func(context.Context, uuid.UUID) (domain.CancellationDecision, error) {
			return domain.CancellationDecision{
				Cancellable:       true,
				RefundAmount:      decimal.RequireFromString("81"),
				HoursUntilCheckIn: 30,
			}, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodGet, "/reservations/"+uuid.NewString()+"/cancellation", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[gen.CancellationQuote](t, rec)
	assert.True(t, resp.Cancellable)
	assert.True(t, resp.RefundAmount.Equal(decimal.NewFromInt(81)))
	assert.InDelta(t, 30.0, resp.HoursUntilCheckIn, 0.001)
}

func TestUpdatePayment_200(t *testing.T) {
	fixture := reservationFixture()
	fixture.PaymentStatus = domain.PaymentPaid
	svc := services{reservations: &mockReservationServicer{
		updatePayment: func(_ context.Context, _ uuid.UUID, upd domain.PaymentUpdate) (domain.Reservation, error) {
			assert.Equal(t, domain.PaymentPaid, upd.Status)
			assert.Equal(t, "card", upd.Method)
			assert.True(t, upd.PaidAmount.Equal(decimal.NewFromInt(330)))
			return fixture, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPut, "/reservations/"+fixture.ID.String()+"/payment",
		map[string]any{"status": "paid", "method": "card", "paid_amount": "330.00"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[gen.Reservation](t, rec)
	assert.Equal(t, gen.PaymentStatusPaid, resp.PaymentStatus)
	assert.Equal(t, gen.ReservationStatusPending, resp.Status, "payment never changes the lifecycle status")
}

func TestUpdatePayment_422_UnknownStatus(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPut, "/reservations/"+uuid.NewString()+"/payment",
		map[string]any{"status": "overpaid"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec)
	assert.Contains(t, resp.Error.Message, "status must be one of")
}

// ---- ledger ----------------------------------------------------------------

func TestAddCharge_201(t *testing.T) {
	fixture := reservationFixture()
	svc := services{ledger: &mockLedgerServicer{
		addCharge: func(_ context.Context, id uuid.UUID, in domain.NewCharge) (domain.Reservation, error) {
			assert.Equal(t, fixture.ID, id)
			assert.Equal(t, "Minibar", in.Description)
			assert.Equal(t, 2, in.Quantity)
			assert.True(t, in.UnitPrice.Equal(decimal.NewFromInt(12)))
			return fixture, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+fixture.ID.String()+"/charges",
		map[string]any{"description": "Minibar", "quantity": 2, "unit_price": "12.00"})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddCharge_422_QuantityCeiling(t *testing.T) {
	svc := services{ledger: &mockLedgerServicer{
		addCharge: func(context.Context, uuid.UUID, domain.NewCharge) (domain.Reservation, error) {
			t.Fatal("service must not be called")
			return domain.Reservation{}, nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+uuid.NewString()+"/charges",
		map[string]any{"description": "Minibar", "quantity": 1001, "unit_price": "5"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "quantity must be at most 1000", decode[gen.ErrorResponse](t, rec).Error.Message)
}

func TestAddCharge_422_ServiceMoneyValidation(t *testing.T) {
	svc := services{ledger: &mockLedgerServicer{
		addCharge: func(_ context.Context, _ uuid.UUID, in domain.NewCharge) (domain.Reservation, error) {
			assert.Equal(t, "12.005", in.UnitPrice.String())
			return domain.Reservation{}, fmt.Errorf("service.LedgerService.AddCharge: %w: unit_price must have at most two decimal places", domain.ErrValidation)
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+uuid.NewString()+"/charges",
		map[string]any{"description": "Minibar", "quantity": 1, "unit_price": "12.005"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "unit_price must have at most two decimal places", decode[gen.ErrorResponse](t, rec).Error.Message)
}

func TestAddCharge_409_Terminal(t *testing.T) {
	svc := services{ledger: &mockLedgerServicer{
		addCharge: func(context.Context, uuid.UUID, domain.NewCharge) (domain.Reservation, error) {
			return domain.Reservation{}, &domain.StateError{Transition: domain.TransitionCharge, Current: domain.StatusCancelled}
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+uuid.NewString()+"/charges",
		map[string]any{"description": "Minibar", "quantity": 1, "unit_price": "5"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBill_200(t *testing.T) {
	fixture := reservationFixture()
	svc := services{ledger: &mockLedgerServicer{
		bill: func(context.Context, uuid.UUID) (domain.Bill, error) {
			return domain.NewBill(fixture, decimal.RequireFromString("0.10"), time.Now().UTC()), nil
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodGet, "/reservations/"+fixture.ID.String()+"/bill", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[gen.Bill](t, rec)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(330)))
}

func TestStaleWrite_409(t *testing.T) {
	svc := services{reservations: &mockReservationServicer{
		confirm: func(context.Context, uuid.UUID) (domain.Reservation, error) {
			return domain.Reservation{}, fmt.Errorf("service: %w", domain.ErrStaleWrite)
		},
	}}
	rec := serve(t, newHTTPHandler(svc), http.MethodPost, "/reservations/"+uuid.NewString()+"/confirm", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", decode[gen.ErrorResponse](t, rec).Error.Code)
}
