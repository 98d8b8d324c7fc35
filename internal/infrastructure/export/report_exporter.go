package export

import (
	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/reporting"
	"prevencar_vistorias/internal/usecase/interfaces"
)

// ReportExporter bundles the CSV and PDF renderers behind the single
// interface the report endpoint depends on.

type ReportExporter struct {
	csv *CSVExporter
	pdf *PDFExporter
}

var _ interfaces.IReportExporter = (*ReportExporter)(nil)
var _ interfaces.IReceiptExporter = (*PDFExporter)(nil)

func NewReportExporter(csv *CSVExporter, pdf *PDFExporter) *ReportExporter {
	return &ReportExporter{csv: csv, pdf: pdf}
}

func (e *ReportExporter) FinancialCSV(sheets []entities.Inspection) ([]byte, error) {
	return e.csv.FinancialCSV(sheets)
}

func (e *ReportExporter) FinancialPDF(sheets []entities.Inspection, summary reporting.Summary) ([]byte, error) {
	return e.pdf.FinancialPDF(sheets, summary)
}
