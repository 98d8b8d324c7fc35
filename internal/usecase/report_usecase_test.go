package usecase

import (
	"context"
	"testing"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/reporting"
	mock_interfaces "prevencar_vistorias/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_Financial(t *testing.T) {
	sheets := []entities.Inspection{
		{ID: "a", Date: "2024-06-01", TotalValue: 100, PaymentStatus: entities.PaymentStatusPago, PaymentMethod: entities.MethodPix, IndicationID: "ind-1", IndicationName: "Despachante Silva"},
		{ID: "b", Date: "2024-06-15", TotalValue: 200, PaymentStatus: entities.PaymentStatusAPagar},
		{ID: "c", Date: "2024-07-01", TotalValue: 50, PaymentStatus: entities.PaymentStatusPago, PaymentMethod: entities.MethodDinheiro},
	}

	t.Run("filters and summarizes the same subset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(sheets, nil)

		report, err := uc.Financial(context.Background(), reporting.Filter{StartDate: "2024-06-01", EndDate: "2024-06-30"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Sheets) != 2 {
			t.Fatalf("expected 2 sheets, got %d", len(report.Sheets))
		}
		if report.Summary.GrossTotal != 300 || report.Summary.PaidTotal != 100 || report.Summary.PendingTotal != 200 {
			t.Fatalf("unexpected summary: %+v", report.Summary)
		}
		if report.Summary.AverageTicket != 150 {
			t.Fatalf("expected average ticket 150, got %v", report.Summary.AverageTicket)
		}
		if report.Summary.PaymentBreakdown[reporting.UndefinedMethodBucket] != 200 {
			t.Fatalf("expected undefined-method bucket 200, got %v", report.Summary.PaymentBreakdown)
		}
	})

	t.Run("direct-sale partner filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(sheets, nil)

		report, err := uc.Financial(context.Background(), reporting.Filter{IndicationID: reporting.PartnerFilterDirect})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, sheet := range report.Sheets {
			if sheet.IndicationID != "" {
				t.Fatalf("expected only direct sales, got %+v", sheet)
			}
		}
		if len(report.Sheets) != 2 {
			t.Fatalf("expected 2 direct sales, got %d", len(report.Sheets))
		}
	})

	t.Run("empty subset yields zeroed summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		report, err := uc.Financial(context.Background(), reporting.Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Summary.Count != 0 || report.Summary.GrossTotal != 0 || report.Summary.AverageTicket != 0 {
			t.Fatalf("expected zeroed summary, got %+v", report.Summary)
		}
	})
}
