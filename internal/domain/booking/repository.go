package booking

import (
	"context"

	"github.com/JDigital-dev/phcleanpro/internal/models"
)

// Repository is the persistence collaborator for bookings and contact
// leads. Records are never deleted one by one; ClearAll is the only
// bulk reset.
type Repository interface {
	// -------- Booking --------
	Append(
		ctx context.Context,
		b *models.Booking,
	) error

	GetByReference(
		ctx context.Context,
		reference string,
	) (*models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	ListAll(
		ctx context.Context,
	) ([]models.Booking, error)

	ListByStatus(
		ctx context.Context,
		status Status,
	) ([]models.Booking, error)

	ClearAll(
		ctx context.Context,
	) error

	// -------- Contact leads --------
	SaveContactMessage(
		ctx context.Context,
		m *models.ContactMessage,
	) error

	ListContactMessages(
		ctx context.Context,
	) ([]models.ContactMessage, error)
}
