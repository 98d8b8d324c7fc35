package usecase

import (
	"context"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/reporting"
	"prevencar_vistorias/internal/usecase/interfaces"
)

// IReportUseCase exposes the read-side financial report. The exporters must
// be fed from the same call so screen, CSV and PDF always share one subset
// and one summary.

type IReportUseCase interface {
	Financial(ctx context.Context, filter reporting.Filter) (FinancialReport, error)
}

// FinancialReport pairs the filtered subset with its aggregates.
type FinancialReport struct {
	Filter  reporting.Filter      `json:"filter"`
	Sheets  []entities.Inspection `json:"sheets"`
	Summary reporting.Summary     `json:"summary"`
}

type ReportUseCase struct {
	inspections interfaces.IInspectionRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(inspections interfaces.IInspectionRepository) *ReportUseCase {
	return &ReportUseCase{inspections: inspections}
}

func (u *ReportUseCase) Financial(ctx context.Context, filter reporting.Filter) (FinancialReport, error) {
	all, err := u.inspections.List(ctx)
	if err != nil {
		return FinancialReport{}, err
	}

	subset := reporting.Apply(filter, all)
	return FinancialReport{
		Filter:  filter,
		Sheets:  subset,
		Summary: reporting.Summarize(subset),
	}, nil
}
