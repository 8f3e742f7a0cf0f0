package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "installworks/docs" // swagger registration
	"installworks/internal/adapter/http/handlers"
	"installworks/internal/adapter/persistence/repository"
	"installworks/internal/infrastructure/cache"
	"installworks/internal/infrastructure/database"
	"installworks/internal/infrastructure/documents"
	"installworks/internal/infrastructure/notifications"
	"installworks/internal/infrastructure/payments"
	"installworks/internal/usecase"
	"installworks/internal/usecase/interfaces"
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

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	paymentEventRepo := repository.NewPaymentEventDynamoRepository(ddb)
	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	blockedRepo := repository.NewBlockedDateDynamoRepository(ddb)
	engineerRepo := repository.NewEngineerDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	checklistRepo := repository.NewChecklistDynamoRepository(ddb)
	activityRepo := repository.NewActivityDynamoRepository(ddb)
	policyRepo := repository.NewPaymentPolicyDynamoRepository(ddb)

	hub := handlers.NewStatusHub(cache.ConnectRedis(context.Background()))
	go hub.Run()

	var provider interfaces.IPaymentSessionProvider
	mp, err := payments.NewMercadoPagoSessionProvider(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago provider not configured: %v", err)
	} else {
		provider = mp
	}

	notifier := notifications.NewWebhookDispatcher()
	renderer := documents.NewTemplateRenderer()

	orderUseCase := usecase.NewOrderUseCase(orderRepo, clientRepo, policyRepo, engineerRepo, activityRepo, hub)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, orderRepo, orderUseCase)
	paymentUseCase := usecase.NewPaymentUseCase(paymentEventRepo, orderRepo, provider, hub)
	schedulingUseCase := usecase.NewSchedulingUseCase(orderRepo, bookingRepo, engineerRepo, blockedRepo, hub)
	engineerUseCase := usecase.NewEngineerUseCase(orderRepo, checklistRepo, activityRepo, notifier, hub)
	settingsUseCase := usecase.NewSettingsUseCase(policyRepo)
	directoryUseCase := usecase.NewDirectoryUseCase(clientRepo, engineerRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, directoryUseCase, renderer)
	orderHandler := handlers.NewOrderHandler(orderUseCase, quoteUseCase, directoryUseCase, renderer)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	schedulingHandler := handlers.NewSchedulingHandler(schedulingUseCase)
	engineerHandler := handlers.NewEngineerHandler(engineerUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	directoryHandler := handlers.NewDirectoryHandler(directoryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addOrderRoutes(v1, orderHandler, paymentHandler, schedulingHandler, engineerHandler, hub)
	addPaymentRoutes(v1, paymentHandler)
	addDirectoryRoutes(v1, directoryHandler, schedulingHandler)
	addSettingsRoutes(v1, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
