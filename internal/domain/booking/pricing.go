package booking

import (
	"github.com/JDigital-dev/phcleanpro/internal/catalog"
	"github.com/JDigital-dev/phcleanpro/internal/httperr"
)

// ===============================
// Price Calculation
// ===============================

// ComputeTotal is the authoritative price for a booking:
//
//	base price + resolvable addon prices + neighborhood surcharge
//
// Addon ids are de-duplicated before summation and unknown ids are
// skipped; skipped ids come back in the second return so callers can
// log them. An unknown neighborhood contributes zero surcharge. Only an
// unresolvable service is a hard failure, since no price exists then.
func ComputeTotal(serviceID string, addonIDs []string, neighborhood string) (int, []string, error) {
	svc, ok := catalog.ServiceByID(serviceID)
	if !ok {
		return 0, nil, httperr.ErrBusiness("invalid_service")
	}

	total := svc.BasePrice

	resolved, dropped := catalog.ResolveAddons(addonIDs)
	for _, a := range resolved {
		total += a.Price
	}

	if n, ok := catalog.NeighborhoodByName(neighborhood); ok {
		total += n.Surcharge
	}

	return total, dropped, nil
}
