// Package pricing holds the pure pricing core: resolving the effective unit
// price of a catalog service for an optional partner, and computing a sheet's
// total. The package is storage-agnostic on purpose so the billing rules can
// be unit-tested without any store.
package pricing

import "prevencar_vistorias/internal/domain/entities"

// ResolvePrice yields the unit price to charge for a catalog service.
//
// A partner custom price wins when present and positive; otherwise the catalog
// base price applies. There are no error conditions: an unknown service simply
// prices at its (zero) base.
func ResolvePrice(svc entities.ServiceItem, partner *entities.Indication) float64 {
	if partner != nil {
		if custom, ok := partner.CustomPrices[svc.ID]; ok && custom > 0 {
			return custom
		}
	}
	return svc.BasePrice
}

// SeedLines snapshots line names from the catalog and seeds every line whose
// price the operator left unset with the resolved unit price for the partner.
// Operator-set prices, and lines referencing a service id missing from the
// catalog, are kept untouched.
func SeedLines(lines []entities.InspectionService, catalog map[string]entities.ServiceItem, partner *entities.Indication) []entities.InspectionService {
	out := make([]entities.InspectionService, len(lines))
	for i, line := range lines {
		out[i] = line
		svc, ok := catalog[line.ServiceID]
		if !ok {
			continue
		}
		out[i].Name = svc.Name
		if line.Price <= 0 {
			out[i].Price = ResolvePrice(svc, partner)
		}
	}
	return out
}
