package booking

import (
	"context"

	"github.com/JDigital-dev/phcleanpro/internal/catalog"
	domain "github.com/JDigital-dev/phcleanpro/internal/domain/booking"
)

type QuoteInput struct {
	ServiceID    string
	AddonIDs     []string
	Neighborhood string
}

type QuoteLine struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

type Quote struct {
	Total           int         `json:"total"`
	Lines           []QuoteLine `json:"lines"`
	DroppedAddonIDs []string    `json:"dropped_addon_ids,omitempty"`
}

// GetQuote produces the preview the wizard shows while the customer is
// still choosing. It runs the same calculator as submission, so the
// preview and the persisted total cannot drift apart.
type GetQuote struct{}

func NewGetQuote() *GetQuote {
	return &GetQuote{}
}

func (uc *GetQuote) Execute(
	_ context.Context,
	in QuoteInput,
) (*Quote, error) {

	total, dropped, err := domain.ComputeTotal(
		in.ServiceID,
		in.AddonIDs,
		in.Neighborhood,
	)
	if err != nil {
		return nil, err
	}

	svc, _ := catalog.ServiceByID(in.ServiceID)
	lines := []QuoteLine{
		{Label: svc.Title, Amount: svc.BasePrice},
	}

	resolved, _ := catalog.ResolveAddons(in.AddonIDs)
	for _, a := range resolved {
		lines = append(lines, QuoteLine{Label: a.Name, Amount: a.Price})
	}

	if n, ok := catalog.NeighborhoodByName(in.Neighborhood); ok && n.Surcharge > 0 {
		lines = append(lines, QuoteLine{
			Label:  "Transport surcharge (" + n.Name + ")",
			Amount: n.Surcharge,
		})
	}

	return &Quote{
		Total:           total,
		Lines:           lines,
		DroppedAddonIDs: dropped,
	}, nil
}
