package handlers

import (
	"errors"
	"net/http"

	request "prevencar_vistorias/internal/adapter/http/dto/request"
	response "prevencar_vistorias/internal/adapter/http/dto/response"
	"prevencar_vistorias/internal/usecase"
	"prevencar_vistorias/pkg"

	"github.com/gin-gonic/gin"
)

// ClosureHandler handles the monthly closure operations. Closing is
// irreversible: there is no reopen endpoint.

type ClosureHandler struct {
	usecase usecase.IClosureUseCase
}

func NewClosureHandler(uc usecase.IClosureUseCase) *ClosureHandler {
	return &ClosureHandler{usecase: uc}
}

func (h *ClosureHandler) CloseMonth(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.ClosureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	closure, err := h.usecase.CloseMonth(c.Request.Context(), actor, payload.ResolveMonth())
	if err != nil {
		appErr := mapClosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromClosure(closure))
}

func (h *ClosureHandler) List(c *gin.Context) {
	closures, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapClosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClosures(closures))
}

func (h *ClosureHandler) GetMonth(c *gin.Context) {
	closed, err := h.usecase.IsMonthClosed(c.Request.Context(), c.Param("month"))
	if err != nil {
		appErr := mapClosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"mes": c.Param("month"), "fechado": closed})
}

func mapClosureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMonth):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid reference month", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor not allowed to close months", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMonthAlreadyClosed):
		return pkg.NewDomainErrorSimple("MONTH_ALREADY_CLOSED", "Reference month already closed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
