// Package notify hands lifecycle events to the notification and billing
// collaborators. Publishing is fire-and-forget: events are queued, published
// by a background worker, and a failed publish is logged and never undoes
// the transition that produced it.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
)

// Topic is the routing key of an event.
type Topic string

const (
	TopicCheckedIn        Topic = "reservation.checked_in"
	TopicCheckedOut       Topic = "reservation.checked_out"
	TopicCancelled        Topic = "reservation.cancelled"
	TopicBillingFinalized Topic = "billing.finalized"
)

// Publisher delivers an encoded event body under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

// ReservationMessage is the body of every reservation.* event.
type ReservationMessage struct {
	ReservationID uuid.UUID        `json:"reservation_id"`
	Status        string           `json:"status"`
	GuestName     string           `json:"guest_name"`
	GuestEmail    string           `json:"guest_email"`
	RoomNumbers   []string         `json:"room_numbers"`
	CheckIn       string           `json:"check_in"`
	CheckOut      string           `json:"check_out"`
	RefundAmount  *decimal.Decimal `json:"refund_amount,omitempty"`
	Reason        string           `json:"reason,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

// NewReservationMessage snapshots r for a reservation.* event.
func NewReservationMessage(r domain.Reservation, at time.Time) ReservationMessage {
	numbers := make([]string, len(r.Rooms))
	for i, b := range r.Rooms {
		numbers[i] = b.RoomNumber
	}
	msg := ReservationMessage{
		ReservationID: r.ID,
		Status:        string(r.Status),
		GuestName:     r.Guest.Name,
		GuestEmail:    r.Guest.Email,
		RoomNumbers:   numbers,
		CheckIn:       r.CheckIn.Format(domain.DateLayout),
		CheckOut:      r.CheckOut.Format(domain.DateLayout),
		OccurredAt:    at,
	}
	if r.Status == domain.StatusCancelled {
		refund := r.RefundAmount
		msg.RefundAmount = &refund
		msg.Reason = r.CancellationReason
	}
	return msg
}

// BillItemMessage is one line of a BillingMessage.
type BillItemMessage struct {
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// BillingMessage is the body of billing.finalized.
type BillingMessage struct {
	ReservationID uuid.UUID         `json:"reservation"`
	Items         []BillItemMessage `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Tax           decimal.Decimal   `json:"tax"`
	Discount      decimal.Decimal   `json:"discount"`
	Total         decimal.Decimal   `json:"total"`
	FinalizedAt   time.Time         `json:"finalized_at"`
}

// NewBillingMessage converts a finalized bill.
func NewBillingMessage(b domain.Bill) BillingMessage {
	items := make([]BillItemMessage, len(b.Items))
	for i, it := range b.Items {
		items[i] = BillItemMessage{
			Description: it.Description,
			Category:    it.Category,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		}
	}
	return BillingMessage{
		ReservationID: b.ReservationID,
		Items:         items,
		Subtotal:      b.Subtotal,
		Tax:           b.Tax,
		Discount:      b.Discount,
		Total:         b.Total,
		FinalizedAt:   b.FinalizedAt,
	}
}

// DefaultTimeout bounds a single publish.
const DefaultTimeout = 5 * time.Second

// DefaultQueueSize is how many events may wait for the publisher.
const DefaultQueueSize = 256

type event struct {
	ctx   context.Context
	topic Topic
	body  []byte
}

// Notifier encodes events and hands them to a Publisher from a background
// worker, so a slow or unreachable broker never holds up a request.
type Notifier struct {
	pub     Publisher
	log     *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan event
	done   chan struct{}
}

// New constructs a Notifier with DefaultQueueSize and starts its worker.
// A nil logger falls back to slog.Default().
func New(pub Publisher, log *slog.Logger) *Notifier {
	return NewWithQueue(pub, log, DefaultQueueSize)
}

// NewWithQueue is New with an explicit queue size.
func NewWithQueue(pub Publisher, log *slog.Logger, size int) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	if size < 1 {
		size = 1
	}
	n := &Notifier{
		pub:     pub,
		log:     log,
		timeout: DefaultTimeout,
		queue:   make(chan event, size),
		done:    make(chan struct{}),
	}
	go n.run()
	return n
}

// Notify queues msg under topic and returns without waiting for the broker.
// The event is detached from ctx's cancellation so a client hanging up after
// a committed transition does not drop it. Encoding errors, a full queue and
// publish failures are logged at warn and swallowed.
func (n *Notifier) Notify(ctx context.Context, topic Topic, msg any) {
	body, err := json.Marshal(msg)
	if err != nil {
		n.warn(ctx, topic, fmt.Errorf("notify.Notifier.Notify: marshal: %w", err))
		return
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		n.warn(ctx, topic, errors.New("notify.Notifier.Notify: notifier closed"))
		return
	}
	select {
	case n.queue <- event{ctx: context.WithoutCancel(ctx), topic: topic, body: body}:
	default:
		n.warn(ctx, topic, errors.New("notify.Notifier.Notify: queue full, event dropped"))
	}
}

func (n *Notifier) run() {
	defer close(n.done)
	for ev := range n.queue {
		if err := n.publish(ev); err != nil {
			n.warn(ev.ctx, ev.topic, err)
		}
	}
}

func (n *Notifier) publish(ev event) error {
	ctx, cancel := context.WithTimeout(ev.ctx, n.timeout)
	defer cancel()

	if err := n.pub.Publish(ctx, string(ev.topic), ev.body); err != nil {
		return fmt.Errorf("notify.Notifier.publish: %w", err)
	}
	return nil
}

func (n *Notifier) warn(ctx context.Context, topic Topic, err error) {
	n.log.WarnContext(ctx, "event publish failed",
		slog.String("topic", string(topic)),
		slog.String("error", err.Error()),
	)
}

// Close stops accepting events, waits for the queued ones to be published
// and releases the underlying publisher. It is safe to call more than once.
func (n *Notifier) Close() error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	<-n.done
	return n.pub.Close()
}
