package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prevencar_vistorias/internal/adapter/http/handlers/mocks"
	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/reporting"
	"prevencar_vistorias/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_Financial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	exporter := mocks.NewMockIReportExporter(ctrl)
	h := NewReportHandler(uc, exporter)

	r := gin.New()
	r.GET("/v1/reports/financial", h.Financial)

	uc.EXPECT().Financial(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, f reporting.Filter) (usecase.FinancialReport, error) {
			if f.StartDate != "2024-06-01" || f.EndDate != "2024-06-30" {
				t.Fatalf("unexpected filter: %+v", f)
			}
			return usecase.FinancialReport{
				Filter: f,
				Sheets: []entities.Inspection{{ID: "a", TotalValue: 150}},
				Summary: reporting.Summary{
					GrossTotal: 150, Count: 1,
					PaymentBreakdown: map[string]float64{},
				},
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/financial?startDate=2024-06-01&endDate=2024-06-30", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["summary"] == nil || body["sheets"] == nil {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestReportHandler_FinancialCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	exporter := mocks.NewMockIReportExporter(ctrl)
	h := NewReportHandler(uc, exporter)

	r := gin.New()
	r.GET("/v1/reports/financial.csv", h.FinancialCSV)

	sheets := []entities.Inspection{{ID: "a"}}
	uc.EXPECT().Financial(gomock.Any(), gomock.Any()).Return(usecase.FinancialReport{Sheets: sheets}, nil)
	exporter.EXPECT().FinancialCSV(sheets).Return([]byte("Data;Placa\n"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/financial.csv", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected csv content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment; filename=relatorio-financeiro-") {
		t.Fatalf("unexpected disposition: %q", cd)
	}
}

func TestReportHandler_FinancialPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	exporter := mocks.NewMockIReportExporter(ctrl)
	h := NewReportHandler(uc, exporter)

	r := gin.New()
	r.GET("/v1/reports/financial.pdf", h.FinancialPDF)

	report := usecase.FinancialReport{
		Sheets:  []entities.Inspection{{ID: "a"}},
		Summary: reporting.Summary{Count: 1},
	}
	uc.EXPECT().Financial(gomock.Any(), gomock.Any()).Return(report, nil)
	exporter.EXPECT().FinancialPDF(report.Sheets, report.Summary).Return([]byte("%PDF-1.7"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/financial.pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected pdf content type, got %q", ct)
	}
}
