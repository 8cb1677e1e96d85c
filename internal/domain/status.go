package domain

// ReservationStatus is the lifecycle position of a reservation.
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked-in"
	StatusCheckedOut ReservationStatus = "checked-out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no-show"
)

// AllStatuses lists every reservation status in lifecycle order.
var AllStatuses = []ReservationStatus{
	StatusPending, StatusConfirmed, StatusCheckedIn,
	StatusCheckedOut, StatusCancelled, StatusNoShow,
}

// Active reports whether a reservation in this status holds its rooms.
// Only active reservations take part in conflict detection.
func (s ReservationStatus) Active() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted.
func (s ReservationStatus) Terminal() bool {
	switch s {
	case StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Transition names an edge of the reservation state machine.
type Transition string

const (
	TransitionAllocate Transition = "allocate"
	TransitionConfirm  Transition = "confirm"
	TransitionCheckIn  Transition = "check-in"
	TransitionCheckOut Transition = "check-out"
	TransitionCancel   Transition = "cancel"
	TransitionNoShow   Transition = "no-show"
	// TransitionCharge is not a status change but shares the guard table:
	// charges are accepted only while the reservation is not terminal.
	TransitionCharge Transition = "charge"
	// TransitionPayment is the payment collaborator's write. It has no edge:
	// it is refused only on terminal reservations, except for refunds.
	TransitionPayment Transition = "update payment of"
)

// AllTransitions lists every guarded operation.
var AllTransitions = []Transition{
	TransitionAllocate, TransitionConfirm, TransitionCheckIn,
	TransitionCheckOut, TransitionCancel, TransitionNoShow, TransitionCharge,
}

type edge struct {
	from []ReservationStatus
	to   ReservationStatus // empty when the operation keeps the status
}

var edges = map[Transition]edge{
	TransitionAllocate: {from: []ReservationStatus{StatusPending, StatusConfirmed}},
	TransitionConfirm:  {from: []ReservationStatus{StatusPending}, to: StatusConfirmed},
	TransitionCheckIn:  {from: []ReservationStatus{StatusConfirmed}, to: StatusCheckedIn},
	TransitionCheckOut: {from: []ReservationStatus{StatusCheckedIn}, to: StatusCheckedOut},
	TransitionCancel:   {from: []ReservationStatus{StatusPending, StatusConfirmed}, to: StatusCancelled},
	TransitionNoShow:   {from: []ReservationStatus{StatusConfirmed}, to: StatusNoShow},
	TransitionCharge:   {from: []ReservationStatus{StatusPending, StatusConfirmed, StatusCheckedIn}},
}

// CanApply reports whether t is permitted from status s.
func CanApply(s ReservationStatus, t Transition) bool {
	e, ok := edges[t]
	if !ok {
		return false
	}
	for _, f := range e.from {
		if f == s {
			return true
		}
	}
	return false
}

// Apply moves r along edge t. It returns a *StateError and leaves r untouched
// when the edge does not start at r's current status.
func (r *Reservation) Apply(t Transition) error {
	if !CanApply(r.Status, t) {
		return &StateError{Transition: t, Current: r.Status}
	}
	if to := edges[t].to; to != "" {
		r.Status = to
	}
	return nil
}
