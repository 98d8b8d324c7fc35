package main

import (
	_ "prevencar_vistorias/docs"
	"prevencar_vistorias/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Prevencar Vistorias API
// @version         1.0
// @description     Vehicle inspection management (tickets, pricing, monthly closures and reports) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-Id
// @description Resolved user id forwarded by the upstream identity service.

func main() {
	routes.Run()
}
