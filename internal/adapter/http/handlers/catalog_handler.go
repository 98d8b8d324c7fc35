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

// CatalogHandler handles the service price list and the referral partners.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) SaveService(c *gin.Context) {
	var payload request.ServiceItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	item := payload.ToEntity()
	creating := item.ID == ""

	saved, err := h.usecase.SaveService(c.Request.Context(), item)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if creating {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromServiceItem(saved))
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	items, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceItems(items))
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) SaveIndication(c *gin.Context) {
	var payload request.IndicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	ind := payload.ToEntity()
	creating := ind.ID == ""

	saved, err := h.usecase.SaveIndication(c.Request.Context(), ind)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if creating {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromIndication(saved))
}

func (h *CatalogHandler) GetIndication(c *gin.Context) {
	ind, err := h.usecase.GetIndication(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIndication(ind))
}

func (h *CatalogHandler) ListIndications(c *gin.Context) {
	list, err := h.usecase.ListIndications(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIndications(list))
}

func (h *CatalogHandler) DeleteIndication(c *gin.Context) {
	if err := h.usecase.DeleteIndication(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceItem),
		errors.Is(err, usecase.ErrInvalidIndication),
		errors.Is(err, usecase.ErrUnknownCustomPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIndicationNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Indication not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
