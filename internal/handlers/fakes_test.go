package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/gin-gonic/gin"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/models"
	"github.com/JDigital-dev/phcleanpro/internal/notify"
	ucBooking "github.com/JDigital-dev/phcleanpro/internal/usecase/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errNotFound = errors.New("record not found")

type memoryRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	messages []models.ContactMessage
}

func (r *memoryRepo) Append(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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

type noopPublisher struct{}

func (noopPublisher) Dispatch(notify.Event) {}

// publicTestRouter wires the booking handler against an in-memory repo.
func publicTestRouter(repo *memoryRepo) *gin.Engine {
	h := NewBookingHandler(
		ucBooking.NewSubmitBooking(repo, noopPublisher{}),
		ucBooking.NewGetQuote(),
	)

	r := gin.New()
	r.POST("/api/public/bookings", h.Create)
	r.POST("/api/public/quote", h.Quote)
	r.POST("/api/public/bookings/validate-step", h.ValidateStep)
	return r
}

func adminTestRouter(repo *memoryRepo) *gin.Engine {
	h := NewAdminHandler(
		ucBooking.NewListBookings(repo),
		ucBooking.NewBookingStats(repo),
		ucBooking.NewUpdateBookingStatus(repo),
		ucBooking.NewClearBookings(repo),
		ucBooking.NewListContactLeads(repo),
	)

	r := gin.New()
	r.GET("/api/admin/bookings", h.ListBookings)
	r.GET("/api/admin/stats", h.Stats)
	r.PATCH("/api/admin/bookings/:reference/status", h.UpdateStatus)
	r.DELETE("/api/admin/bookings", h.ClearBookings)
	r.GET("/api/admin/contact-messages", h.ListContactMessages)
	return r
}
