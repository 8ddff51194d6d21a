package routes

import (
	"log"
	"strconv"

	_ "atelie_arq/docs" // This will be auto-generated
	"atelie_arq/internal/adapter/http/handlers"
	repository2 "atelie_arq/internal/adapter/persistence/repository"
	"atelie_arq/internal/domain/catalog"
	"atelie_arq/internal/domain/engine"
	appconfig "atelie_arq/internal/infrastructure/config"
	"atelie_arq/internal/infrastructure/database"
	"atelie_arq/internal/infrastructure/payments"
	"atelie_arq/internal/usecase"
	"atelie_arq/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	settings, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(settings)

	if err := router.Run(":" + strconv.Itoa(settings.HTTPPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(settings appconfig.Settings) {
	cat := loadCatalog(settings)
	eng := engine.NewEngine(cat)

	ddb := database.ConnectDynamoDB(settings)

	proposalRepo := repository2.NewProposalRecordDynamoRepository(ddb)
	paymentRepo := repository2.NewEntradaPaymentDynamoRepository(ddb)

	proposalUseCase := usecase.NewProposalUseCase(eng, proposalRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(settings.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewEntradaPaymentUseCase(paymentRepo, proposalRepo, paymentGateway)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	entradaPaymentHandler := handlers.NewEntradaPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, proposalHandler, entradaPaymentHandler)
}

func loadCatalog(settings appconfig.Settings) *catalog.Catalog {
	if settings.CatalogPath != "" {
		cat, err := catalog.LoadFile(settings.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", settings.CatalogPath, err)
		}
		log.Printf("[routes][catalog] loaded catalog from %s version=%d", settings.CatalogPath, cat.Versao)
		return cat
	}

	cat, err := catalog.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load embedded catalog: %v", err)
	}
	log.Printf("[routes][catalog] loaded embedded catalog version=%d", cat.Versao)
	return cat
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
