package notify

import (
	"context"
	"log"

	"github.com/JDigital-dev/phcleanpro/internal/models"
)

type EventType string

const (
	EventBookingCreated EventType = "booking_created"
	EventContactLead    EventType = "contact_lead"
)

type Event struct {
	Type    EventType
	Booking *models.Booking
	Lead    *models.ContactMessage
}

// Publisher is what the submission pipeline sees: emit and move on.
type Publisher interface {
	Dispatch(ev Event)
}

// Dispatcher consumes events on a worker goroutine and turns them into
// emails. Delivery never blocks or fails the caller; a full queue drops
// the event with a log line.
type Dispatcher struct {
	sender   EmailSender
	operator string
	queue    chan Event
	done     chan struct{}
}

func NewDispatcher(sender EmailSender, operatorEmail string) *Dispatcher {
	d := &Dispatcher{
		sender:   sender,
		operator: operatorEmail,
		queue:    make(chan Event, 100),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Printf("notify: queue full, dropping %s event", ev.Type)
	}
}

// Close drains pending events and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		d.handle(ev)
	}
}

func (d *Dispatcher) handle(ev Event) {
	ctx := context.Background()

	switch ev.Type {
	case EventBookingCreated:
		if ev.Booking == nil {
			return
		}
		d.send(ctx, customerConfirmationEmail(ev.Booking))
		d.send(ctx, operatorAlertEmail(ev.Booking, d.operator))

	case EventContactLead:
		if ev.Lead == nil {
			return
		}
		d.send(ctx, leadAlertEmail(ev.Lead, d.operator))

	default:
		log.Printf("notify: unknown event type %q", ev.Type)
	}
}

func (d *Dispatcher) send(ctx context.Context, msg EmailMessage) {
	if err := d.sender.Send(ctx, msg); err != nil {
		log.Printf("notify: send failed to=%s subject=%q: %v", msg.To, msg.Subject, err)
	}
}
