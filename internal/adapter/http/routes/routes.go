package routes

import (
	"log"
	"os"
	"strconv"

	_ "prevencar_vistorias/docs" // This will be auto-generated
	"prevencar_vistorias/internal/adapter/http/handlers"
	repository2 "prevencar_vistorias/internal/adapter/persistence/repository"
	"prevencar_vistorias/internal/infrastructure/cep"
	"prevencar_vistorias/internal/infrastructure/database"
	"prevencar_vistorias/internal/infrastructure/export"
	"prevencar_vistorias/internal/infrastructure/payments"
	"prevencar_vistorias/internal/usecase"
	"prevencar_vistorias/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	inspectionRepo := repository2.NewInspectionDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	indicationRepo := repository2.NewIndicationDynamoRepository(ddb)
	closureRepo := repository2.NewClosureDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	auditRepo := repository2.NewAuditLogDynamoRepository(ddb)

	inspectionUseCase := usecase.NewInspectionUseCase(inspectionRepo, serviceRepo, indicationRepo, closureRepo, auditRepo)
	closureUseCase := usecase.NewClosureUseCase(closureRepo, inspectionRepo, auditRepo)
	reportUseCase := usecase.NewReportUseCase(inspectionRepo)
	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, indicationRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(inspectionUseCase, paymentGateway, auditRepo)

	pdfExporter := export.NewPDFExporter()
	csvExporter := export.NewCSVExporter()
	reportExporter := export.NewReportExporter(csvExporter, pdfExporter)

	inspectionHandler := handlers.NewInspectionHandler(inspectionUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, inspectionUseCase, pdfExporter)
	reportHandler := handlers.NewReportHandler(reportUseCase, reportExporter)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	closureHandler := handlers.NewClosureHandler(closureUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	auditHandler := handlers.NewAuditHandler(auditRepo)
	cepHandler := handlers.NewCEPHandler(cep.NewViaCEPClient())

	v1 := router.Group("/v1")
	v1.Use(handlers.ActorResolver(userUseCase))

	addPingRoutes(v1)
	addInspectionRoutes(v1, inspectionHandler, paymentHandler)
	addCatalogRoutes(v1, catalogHandler)
	addClosureRoutes(v1, closureHandler)
	addReportRoutes(v1, reportHandler)
	addUserRoutes(v1, userHandler)
	addAuditRoutes(v1, auditHandler)
	addCEPRoutes(v1, cepHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
