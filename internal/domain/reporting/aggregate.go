// Package reporting computes the read-side financial aggregates. Everything
// here is a pure fold over a slice of inspections; the exporters and the
// report endpoint consume the exact same output so the numbers on screen, in
// the CSV and in the PDF can never drift apart.
package reporting

import (
	"sort"

	"prevencar_vistorias/internal/domain/entities"
)

// DirectSaleBucket labels tickets with no referring partner.
const DirectSaleBucket = "Venda Direta"

// UndefinedMethodBucket labels tickets whose payment method is not set yet.
const UndefinedMethodBucket = "A Definir"

// PartnerFilterDirect selects only direct-sale tickets when used as the
// partner id of a Filter.
const PartnerFilterDirect = "particular"

// Filter bounds the subset of tickets a report covers. Zero values mean
// "no restriction" for their dimension.
type Filter struct {
	StartDate     string // AAAA-MM-DD, inclusive
	EndDate       string // AAAA-MM-DD, inclusive
	IndicationID  string // partner id, or PartnerFilterDirect
	MinTotal      *float64
	MaxTotal      *float64
	PaymentMethod entities.PaymentMethod
}

// Matches reports whether one ticket falls inside the filter.
func (f Filter) Matches(i entities.Inspection) bool {
	if f.StartDate != "" && i.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && i.Date > f.EndDate {
		return false
	}
	switch f.IndicationID {
	case "":
	case PartnerFilterDirect:
		if i.IndicationID != "" {
			return false
		}
	default:
		if i.IndicationID != f.IndicationID {
			return false
		}
	}
	if f.MinTotal != nil && i.TotalValue < *f.MinTotal {
		return false
	}
	if f.MaxTotal != nil && i.TotalValue > *f.MaxTotal {
		return false
	}
	if f.PaymentMethod != "" && i.PaymentMethod != f.PaymentMethod {
		return false
	}
	return true
}

// Apply returns the tickets matching the filter, preserving input order.
func Apply(f Filter, inspections []entities.Inspection) []entities.Inspection {
	out := make([]entities.Inspection, 0, len(inspections))
	for _, i := range inspections {
		if f.Matches(i) {
			out = append(out, i)
		}
	}
	return out
}

// PartnerStat is one row of the partner ranking.
type PartnerStat struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Summary is the full financial picture of a filtered subset.
type Summary struct {
	GrossTotal       float64            `json:"gross_total"`
	PaidTotal        float64            `json:"paid_total"`
	PendingTotal     float64            `json:"pending_total"`
	AverageTicket    float64            `json:"average_ticket"`
	Count            int                `json:"count"`
	PaymentBreakdown map[string]float64 `json:"payment_breakdown"`
	PartnerRanking   []PartnerStat      `json:"partner_ranking"`
}

// Summarize folds a subset of tickets into its financial summary. The empty
// subset yields all zeros, an empty breakdown and an empty ranking.
func Summarize(inspections []entities.Inspection) Summary {
	s := Summary{
		Count:            len(inspections),
		PaymentBreakdown: map[string]float64{},
	}

	partners := map[string]*PartnerStat{}
	for _, i := range inspections {
		s.GrossTotal += i.TotalValue
		if i.PaymentStatus == entities.PaymentStatusPago {
			s.PaidTotal += i.TotalValue
		}

		method := string(i.PaymentMethod)
		if method == "" {
			method = UndefinedMethodBucket
		}
		s.PaymentBreakdown[method] += i.TotalValue

		name := i.IndicationName
		if name == "" {
			name = DirectSaleBucket
		}
		stat, ok := partners[name]
		if !ok {
			stat = &PartnerStat{Name: name}
			partners[name] = stat
		}
		stat.Total += i.TotalValue
		stat.Count++
	}

	s.PendingTotal = s.GrossTotal - s.PaidTotal
	if s.Count > 0 {
		s.AverageTicket = s.GrossTotal / float64(s.Count)
	}

	s.PartnerRanking = make([]PartnerStat, 0, len(partners))
	for _, stat := range partners {
		s.PartnerRanking = append(s.PartnerRanking, *stat)
	}
	sort.Slice(s.PartnerRanking, func(a, b int) bool {
		if s.PartnerRanking[a].Total != s.PartnerRanking[b].Total {
			return s.PartnerRanking[a].Total > s.PartnerRanking[b].Total
		}
		return s.PartnerRanking[a].Name < s.PartnerRanking[b].Name
	})
	return s
}
