package routes

import (
	"context"
	"log"
	"strconv"

	_ "credimaq/docs" // This will be auto-generated
	"credimaq/internal/adapter/http/handlers"
	repository2 "credimaq/internal/adapter/persistence/repository"
	"credimaq/internal/config"
	"credimaq/internal/infrastructure/bureau"
	"credimaq/internal/infrastructure/database"
	"credimaq/internal/infrastructure/payments"
	"credimaq/internal/usecase"
	"credimaq/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(logger *zap.Logger) {
	cfg := config.Load()

	ddb, err := database.ConnectDynamoDB(context.Background())
	if err != nil {
		logger.Fatal("Failed to connect to DynamoDB", zap.Error(err))
	}

	appRepo := repository2.NewApplicationDynamoRepository(ddb)
	subRepo := repository2.NewSubRecordDynamoRepository(ddb)
	historyRepo := repository2.NewEvaluationHistoryDynamoRepository(ddb)
	decisionRepo := repository2.NewAnalystDecisionDynamoRepository(ddb)
	activityRepo := repository2.NewActivityDynamoRepository(ddb)

	provider, err := bureau.NewProvider(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build bureau provider", zap.Error(err))
	}

	simulated := usecase.NewSimulatedEvaluationStrategy(logger)
	var external interfaces.IEvaluationStrategy
	if provider.Name() != bureau.ProviderSimulated {
		external = usecase.NewExternalEvaluationStrategy(
			provider,
			usecase.RetryPolicy{MaxAttempts: cfg.RetryMaxAttempts, Backoff: cfg.RetryBackoff},
			cfg.ProviderTimeout,
			cfg.ApproveCutoff,
			cfg.ReviewCutoff,
			cfg.AnnualInterestRate,
			logger,
		)
	}

	var downPayments interfaces.IDownPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		downPayments = mpGateway
	}

	evaluationUseCase := usecase.NewEvaluationUseCase(appRepo, subRepo, historyRepo, external, simulated, logger)
	applicationUseCase := usecase.NewApplicationUseCase(appRepo, subRepo, provider, evaluationUseCase, activityRepo, logger)
	analystUseCase := usecase.NewAnalystUseCase(appRepo, subRepo, decisionRepo, activityRepo, historyRepo, downPayments, cfg.AnnualInterestRate, logger)

	applicationHandler := handlers.NewApplicationHandler(applicationUseCase)
	analystHandler := handlers.NewAnalystHandler(analystUseCase)
	adminHandler := handlers.NewAdminHandler(applicationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCreditRoutes(v1, applicationHandler, analystHandler, adminHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
