package interfaces

import (
	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/reporting"
)

// IReportExporter renders a filtered report subset for download. Both formats
// are fed from the same subset and summary the report endpoint returns, so
// the exports can never disagree with the screen.

type IReportExporter interface {
	FinancialCSV(sheets []entities.Inspection) ([]byte, error)
	FinancialPDF(sheets []entities.Inspection, summary reporting.Summary) ([]byte, error)
}

// IReceiptExporter renders the printable receipt of a single sheet.

type IReceiptExporter interface {
	ReceiptPDF(sheet entities.Inspection) ([]byte, error)
}
