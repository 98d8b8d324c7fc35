package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "prevencar_vistorias/internal/adapter/http/dto/request"
	response "prevencar_vistorias/internal/adapter/http/dto/response"
	"prevencar_vistorias/internal/domain/billing"
	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/reporting"
	"prevencar_vistorias/internal/usecase"
	"prevencar_vistorias/internal/usecase/interfaces"
	"prevencar_vistorias/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInspectionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// InspectionHandler handles HTTP requests for inspection sheets: the
// technical intake, the cashier step, bulk updates and the listing.

type InspectionHandler struct {
	usecase usecase.IInspectionUseCase
}

func NewInspectionHandler(uc usecase.IInspectionUseCase) *InspectionHandler {
	return &InspectionHandler{usecase: uc}
}

// SaveIntake persists the technical step of a sheet. An empty id creates,
// a present id edits.
func (h *InspectionHandler) SaveIntake(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.InspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	sheet := payload.ToEntity()
	creating := sheet.ID == ""

	saved, err := h.usecase.SaveIntake(c.Request.Context(), actor, sheet)
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if creating {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromInspection(saved))
}

// SaveBilling closes the cashier step for one sheet.
func (h *InspectionHandler) SaveBilling(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.BillingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}
	method, valid := payload.ResolveMethod()
	if !valid {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SaveBilling(c.Request.Context(), actor, usecase.BillingCommand{
		ID:            c.Param("id"),
		PaymentMethod: method,
		NFe:           payload.NFe,
		Observations:  payload.Observations,
	})
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInspection(updated))
}

// BulkUpdate applies one status/payment update to a multi-selection. The
// selection is all-or-nothing: any rejected sheet rejects the whole batch.
func (h *InspectionHandler) BulkUpdate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.BulkUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}
	updates, valid := payload.ResolveUpdates()
	if !valid {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.BulkUpdate(c.Request.Context(), actor, payload.ResolveIDs(), updates)
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInspections(updated))
}

func (h *InspectionHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InspectionHandler) GetByID(c *gin.Context) {
	sheet, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInspection(sheet))
}

// Search lists sheets filtered server-side via query parameters.
func (h *InspectionHandler) Search(c *gin.Context) {
	q := usecase.SearchQuery{
		Filter:        filterFromQuery(c),
		LicensePlate:  c.Query("licensePlate"),
		ClientName:    c.Query("clientName"),
		Status:        entities.InspectionStatus(c.Query("status")),
		PaymentStatus: entities.PaymentStatus(c.Query("paymentStatus")),
	}

	sheets, err := h.usecase.Search(c.Request.Context(), q)
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInspections(sheets))
}

func mapInspectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInspectionID),
		errors.Is(err, usecase.ErrEmptyBulkSelection),
		errors.Is(err, usecase.ErrIndicationNotFound),
		errors.Is(err, billing.ErrInvalidMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, billing.ErrIncompleteIntake):
		return pkg.NewDomainErrorSimple("INCOMPLETE_INTAKE", "Sheet is missing required intake fields", http.StatusUnprocessableEntity)
	case errors.Is(err, billing.ErrPaymentOnIncomplete):
		return pkg.NewDomainErrorSimple("PAYMENT_ON_INCOMPLETE", "Payment cannot be recorded on an incomplete sheet", http.StatusForbidden)
	case errors.Is(err, interfaces.ErrPeriodClosed):
		return pkg.NewDomainErrorSimple("PERIOD_CLOSED", "Reference month is closed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInspectionNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Inspection not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// filterFromQuery builds the shared financial filter from query parameters.
// It is reused by the listing, the report and the exports.
func filterFromQuery(c *gin.Context) reporting.Filter {
	f := reporting.Filter{
		StartDate:     c.Query("startDate"),
		EndDate:       c.Query("endDate"),
		IndicationID:  c.Query("indicationId"),
		PaymentMethod: entities.PaymentMethod(c.Query("paymentMethod")),
	}
	if v, ok := parseQueryFloat(c, "minTotal"); ok {
		f.MinTotal = &v
	}
	if v, ok := parseQueryFloat(c, "maxTotal"); ok {
		f.MaxTotal = &v
	}
	return f
}

func parseQueryFloat(c *gin.Context, key string) (float64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
