package pricing

import "prevencar_vistorias/internal/domain/entities"

// ComputeTotal sums the charged price of every service line plus the ad-hoc
// "other service" value. Negative other-service input counts as zero, so the
// result can never go below the sum of the lines. Pure and deterministic: the
// sheet's persisted TotalValue must always equal this, recomputed on save.
func ComputeTotal(lines []entities.InspectionService, otherPrice float64) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Price
	}
	if otherPrice > 0 {
		total += otherPrice
	}
	return total
}
