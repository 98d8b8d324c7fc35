package handlers

import (
	"net/http"

	response "prevencar_vistorias/internal/adapter/http/dto/response"
	"prevencar_vistorias/internal/usecase/interfaces"
	"prevencar_vistorias/pkg"

	"github.com/gin-gonic/gin"
)

// AuditHandler serves the audit trail, newest entries first.

type AuditHandler struct {
	repo interfaces.IAuditLogRepository
}

func NewAuditHandler(repo interfaces.IAuditLogRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

func (h *AuditHandler) List(c *gin.Context) {
	entries, err := h.repo.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	category := c.Query("type")
	if category != "" {
		filtered := entries[:0:0]
		for _, e := range entries {
			if string(e.Category) == category {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	c.JSON(http.StatusOK, response.FromAuditLogs(entries))
}
