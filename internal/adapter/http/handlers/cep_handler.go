package handlers

import (
	"errors"
	"net/http"

	"prevencar_vistorias/internal/usecase/interfaces"
	"prevencar_vistorias/pkg"

	"github.com/gin-gonic/gin"
)

// CEPHandler proxies postal-code lookups used to prefill client addresses.

type CEPHandler struct {
	lookup interfaces.IAddressLookup
}

func NewCEPHandler(lookup interfaces.IAddressLookup) *CEPHandler {
	return &CEPHandler{lookup: lookup}
}

func (h *CEPHandler) Lookup(c *gin.Context) {
	addr, err := h.lookup.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		appErr := mapCEPError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, addr)
}

func mapCEPError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrCEPNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "CEP not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
