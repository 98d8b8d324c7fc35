package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "prevencar_vistorias/internal/adapter/http/dto/request"
	response "prevencar_vistorias/internal/adapter/http/dto/response"
	"prevencar_vistorias/internal/usecase"
	"prevencar_vistorias/internal/usecase/interfaces"
	"prevencar_vistorias/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler collects a sheet total through the payment gateway and
// serves the printable receipt.

type PaymentHandler struct {
	payments    usecase.IPaymentUseCase
	inspections usecase.IInspectionUseCase
	receipts    interfaces.IReceiptExporter
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, inspections usecase.IInspectionUseCase, receipts interfaces.IReceiptExporter) *PaymentHandler {
	return &PaymentHandler{payments: payments, inspections: inspections, receipts: receipts}
}

func (h *PaymentHandler) ChargeInspection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}
	method, valid := payload.ResolveMethod()
	if !valid {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	updated, err := h.payments.ChargeInspection(c.Request.Context(), actor, usecase.ChargeCommand{
		InspectionID:  c.Param("id"),
		PaymentMethod: method,
		Payload:       payload.Payload,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInspection(updated))
}

// ReceiptPDF renders the printable receipt of one sheet.
func (h *PaymentHandler) ReceiptPDF(c *gin.Context) {
	sheet, err := h.inspections.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := h.receipts.ReceiptPDF(sheet)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=recibo-%s.pdf", sheet.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInspectionID), errors.Is(err, usecase.ErrDeferredCharge):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInspectionNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Inspection not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSheetNotChargeable):
		return pkg.NewDomainErrorSimple("SHEET_NOT_CHARGEABLE", "Sheet is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeNotApproved):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_APPROVED", "Charge was not approved by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrPeriodClosed):
		return pkg.NewDomainErrorSimple("PERIOD_CLOSED", "Reference month is closed", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
