package response

import (
	"prevencar_vistorias/internal/domain/reporting"
	"prevencar_vistorias/internal/usecase"
)

type ReportFilterResponse struct {
	StartDate     string   `json:"startDate,omitempty"`
	EndDate       string   `json:"endDate,omitempty"`
	IndicationID  string   `json:"indicationId,omitempty"`
	MinTotal      *float64 `json:"minTotal,omitempty"`
	MaxTotal      *float64 `json:"maxTotal,omitempty"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
}

type FinancialReportResponse struct {
	Filter  ReportFilterResponse `json:"filter"`
	Sheets  []InspectionResponse `json:"sheets"`
	Summary reporting.Summary    `json:"summary"`
}

func FromFinancialReport(r usecase.FinancialReport) FinancialReportResponse {
	return FinancialReportResponse{
		Filter: ReportFilterResponse{
			StartDate:     r.Filter.StartDate,
			EndDate:       r.Filter.EndDate,
			IndicationID:  r.Filter.IndicationID,
			MinTotal:      r.Filter.MinTotal,
			MaxTotal:      r.Filter.MaxTotal,
			PaymentMethod: string(r.Filter.PaymentMethod),
		},
		Sheets:  FromInspections(r.Sheets),
		Summary: r.Summary,
	}
}
