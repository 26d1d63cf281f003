package booking

import (
	"context"
	"errors"
	"sync"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/models"
	"github.com/JDigital-dev/phcleanpro/internal/notify"
)

var errNotFound = errors.New("record not found")

// memoryRepo is an in-memory stand-in for the gorm repository.
type memoryRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	messages []models.ContactMessage

	failAppend bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{}
}

func (r *memoryRepo) Append(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAppend {
		return errors.New("append failed")
	}
	r.bookings = append([]models.Booking{*b}, r.bookings...)
	return nil
}

func (r *memoryRepo) GetByReference(_ context.Context, reference string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].Reference == reference {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, errNotFound
}

func (r *memoryRepo) Update(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].Reference == b.Reference {
			r.bookings[i] = *b
			return nil
		}
	}
	return errNotFound
}

func (r *memoryRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *memoryRepo) ListByStatus(_ context.Context, status domain.Status) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == string(status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepo) ClearAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = nil
	return nil
}

func (r *memoryRepo) SaveContactMessage(_ context.Context, m *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uint(len(r.messages) + 1)
	r.messages = append(r.messages, *m)
	return nil
}

func (r *memoryRepo) ListContactMessages(_ context.Context) ([]models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

// capturePublisher records dispatched events synchronously.
type capturePublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *capturePublisher) Dispatch(ev notify.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *capturePublisher) all() []notify.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]notify.Event, len(p.events))
	copy(out, p.events)
	return out
}
