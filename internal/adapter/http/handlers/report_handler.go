package handlers

import (
	"fmt"
	"net/http"
	"time"

	response "prevencar_vistorias/internal/adapter/http/dto/response"
	"prevencar_vistorias/internal/usecase"
	"prevencar_vistorias/internal/usecase/interfaces"
	"prevencar_vistorias/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the financial report and its downloadable exports.
// All three endpoints run the same filter through the same use case, so the
// screen, the CSV and the PDF always show the same subset.

type ReportHandler struct {
	usecase  usecase.IReportUseCase
	exporter interfaces.IReportExporter
}

func NewReportHandler(uc usecase.IReportUseCase, exporter interfaces.IReportExporter) *ReportHandler {
	return &ReportHandler{usecase: uc, exporter: exporter}
}

func (h *ReportHandler) Financial(c *gin.Context) {
	report, err := h.usecase.Financial(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialReport(report))
}

func (h *ReportHandler) FinancialCSV(c *gin.Context) {
	report, err := h.usecase.Financial(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := h.exporter.FinancialCSV(report.Sheets)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=relatorio-financeiro-%s.csv", time.Now().UTC().Format("2006-01-02")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *ReportHandler) FinancialPDF(c *gin.Context) {
	report, err := h.usecase.Financial(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := h.exporter.FinancialPDF(report.Sheets, report.Summary)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=relatorio-financeiro-%s.pdf", time.Now().UTC().Format("2006-01-02")))
	c.Data(http.StatusOK, "application/pdf", data)
}
