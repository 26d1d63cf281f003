package booking

import (
	"context"

	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
	"github.com/JDigital-dev/phcleanpro/internal/models"
)

type ListContactLeads struct {
	repo domain.Repository
}

func NewListContactLeads(repo domain.Repository) *ListContactLeads {
	return &ListContactLeads{repo: repo}
}

func (uc *ListContactLeads) Execute(
	ctx context.Context,
) ([]models.ContactMessage, error) {
	return uc.repo.ListContactMessages(ctx)
}
