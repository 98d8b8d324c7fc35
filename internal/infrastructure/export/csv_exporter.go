package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/reporting"
)

// CSVExporter renders the financial report rows for spreadsheet import.

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

var csvHeader = []string{"Data", "Placa", "Modelo", "Cliente", "Parceiro", "Status", "Pagamento", "Situação", "Valor"}

func (e *CSVExporter) FinancialCSV(sheets []entities.Inspection) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, sheet := range sheets {
		partner := sheet.IndicationName
		if partner == "" {
			partner = reporting.DirectSaleBucket
		}
		method := string(sheet.PaymentMethod)
		if method == "" {
			method = reporting.UndefinedMethodBucket
		}
		row := []string{
			sheet.Date,
			sheet.LicensePlate,
			sheet.VehicleModel,
			sheet.Client.Name,
			partner,
			string(sheet.Status),
			method,
			string(sheet.PaymentStatus),
			formatAmount(sheet.TotalValue),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatAmount renders values with a comma decimal separator, matching how
// the spreadsheets are read locally.
func formatAmount(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}
