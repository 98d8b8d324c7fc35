package export

import (
	"fmt"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/reporting"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFExporter renders the financial report and the per-sheet receipt.

type PDFExporter struct{}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

func (e *PDFExporter) FinancialPDF(sheets []entities.Inspection, summary reporting.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Relatório Financeiro", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New(fmt.Sprintf("Faturamento bruto: %s", money(summary.GrossTotal)), props.Text{Top: 0, Size: 10}),
			text.New(fmt.Sprintf("Recebido: %s", money(summary.PaidTotal)), props.Text{Top: 5, Size: 10}),
			text.New(fmt.Sprintf("A receber: %s", money(summary.PendingTotal)), props.Text{Top: 10, Size: 10}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Fichas: %d", summary.Count), props.Text{Top: 0, Size: 10}),
			text.New(fmt.Sprintf("Ticket médio: %s", money(summary.AverageTicket)), props.Text{Top: 5, Size: 10}),
		),
	)

	m.AddRow(8,
		text.NewCol(2, "Data", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Placa", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Cliente", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Parceiro", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Situação", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Valor", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, sheet := range sheets {
		partner := sheet.IndicationName
		if partner == "" {
			partner = reporting.DirectSaleBucket
		}
		m.AddRow(7,
			text.NewCol(2, sheet.Date, props.Text{Size: 8}),
			text.NewCol(2, sheet.LicensePlate, props.Text{Size: 8}),
			text.NewCol(3, sheet.Client.Name, props.Text{Size: 8}),
			text.NewCol(2, partner, props.Text{Size: 8}),
			text.NewCol(1, string(sheet.PaymentStatus), props.Text{Size: 8}),
			text.NewCol(2, money(sheet.TotalValue), props.Text{Size: 8, Align: align.Right}),
		)
	}

	if len(summary.PartnerRanking) > 0 {
		m.AddRow(10,
			text.NewCol(12, "Ranking de Parceiros", props.Text{Size: 12, Style: fontstyle.Bold, Top: 3}),
		)
		for _, stat := range summary.PartnerRanking {
			m.AddRow(7,
				text.NewCol(6, stat.Name, props.Text{Size: 8}),
				text.NewCol(3, fmt.Sprintf("%d fichas", stat.Count), props.Text{Size: 8, Align: align.Right}),
				text.NewCol(3, money(stat.Total), props.Text{Size: 8, Align: align.Right}),
			)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func (e *PDFExporter) ReceiptPDF(sheet entities.Inspection) ([]byte, error) {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(12,
		text.NewCol(12, "Recibo de Vistoria", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New(fmt.Sprintf("Ficha: %s", sheet.ID), props.Text{Top: 0, Size: 9}),
			text.New(fmt.Sprintf("Data: %s", sheet.Date), props.Text{Top: 5, Size: 9}),
			text.New(fmt.Sprintf("Placa: %s", sheet.LicensePlate), props.Text{Top: 10, Size: 9}),
			text.New(fmt.Sprintf("Modelo: %s", sheet.VehicleModel), props.Text{Top: 15, Size: 9}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Cliente: %s", sheet.Client.Name), props.Text{Top: 0, Size: 9}),
			text.New(fmt.Sprintf("CPF/CNPJ: %s", sheet.Client.Document), props.Text{Top: 5, Size: 9}),
			text.New(fmt.Sprintf("Telefone: %s", sheet.Client.Phone), props.Text{Top: 10, Size: 9}),
		),
	)

	m.AddRow(8,
		text.NewCol(9, "Serviço", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Valor", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, line := range sheet.Services {
		m.AddRow(7,
			text.NewCol(9, line.Name, props.Text{Size: 9}),
			text.NewCol(3, money(line.Price), props.Text{Size: 9, Align: align.Right}),
		)
	}
	if sheet.OtherServicePrice > 0 {
		m.AddRow(7,
			text.NewCol(9, sheet.OtherServiceDescription, props.Text{Size: 9}),
			text.NewCol(3, money(sheet.OtherServicePrice), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(6),
		text.NewCol(3, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(3, money(sheet.TotalValue), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	if sheet.PaymentStatus == entities.PaymentStatusPago {
		m.AddRow(10,
			text.NewCol(12, fmt.Sprintf("Pago em %s via %s", sheet.PaymentDate, sheet.PaymentMethod), props.Text{Size: 9, Top: 3}),
		)
	} else {
		m.AddRow(10,
			text.NewCol(12, "Pagamento pendente", props.Text{Size: 9, Top: 3, Style: fontstyle.Bold}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}
