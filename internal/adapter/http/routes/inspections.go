package routes

import (
	"prevencar_vistorias/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInspections = "/inspections"
	PathServices    = "/services"
	PathIndications = "/indications"
	PathUsers       = "/users"
	PathClosures    = "/closures"
	PathReports     = "/reports"
	PathAuditLogs   = "/audit-logs"
	PathCEP         = "/cep"
)

func addInspectionRoutes(rg *gin.RouterGroup, inspectionHandler *handlers.InspectionHandler, paymentHandler *handlers.PaymentHandler) {
	inspections := rg.Group(PathInspections)
	{
		inspections.POST("", inspectionHandler.SaveIntake)
		inspections.GET("", inspectionHandler.Search)
		inspections.PATCH("/bulk", inspectionHandler.BulkUpdate)
		inspections.GET("/:id", inspectionHandler.GetByID)
		inspections.DELETE("/:id", inspectionHandler.Delete)
		inspections.PATCH("/:id/billing", inspectionHandler.SaveBilling)
		inspections.POST("/:id/charge", paymentHandler.ChargeInspection)
		inspections.GET("/:id/receipt.pdf", paymentHandler.ReceiptPDF)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.POST("", catalogHandler.SaveService)
		services.GET("", catalogHandler.ListServices)
		services.DELETE("/:id", catalogHandler.DeleteService)
	}

	indications := rg.Group(PathIndications)
	{
		indications.POST("", catalogHandler.SaveIndication)
		indications.GET("", catalogHandler.ListIndications)
		indications.GET("/:id", catalogHandler.GetIndication)
		indications.DELETE("/:id", catalogHandler.DeleteIndication)
	}
}

func addClosureRoutes(rg *gin.RouterGroup, closureHandler *handlers.ClosureHandler) {
	closures := rg.Group(PathClosures)
	{
		closures.POST("", closureHandler.CloseMonth)
		closures.GET("", closureHandler.List)
		closures.GET("/:month", closureHandler.GetMonth)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/financial", reportHandler.Financial)
		reports.GET("/financial.csv", reportHandler.FinancialCSV)
		reports.GET("/financial.pdf", reportHandler.FinancialPDF)
	}
}

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.Save)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.DELETE("/:id", userHandler.Delete)
	}
}

func addAuditRoutes(rg *gin.RouterGroup, auditHandler *handlers.AuditHandler) {
	rg.GET(PathAuditLogs, auditHandler.List)
}

func addCEPRoutes(rg *gin.RouterGroup, cepHandler *handlers.CEPHandler) {
	rg.GET(PathCEP+"/:cep", cepHandler.Lookup)
}
