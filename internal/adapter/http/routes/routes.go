package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/Iris-Sagastume/construct-ia/docs"
	"github.com/Iris-Sagastume/construct-ia/internal/adapter/http/handlers"
	"github.com/Iris-Sagastume/construct-ia/internal/adapter/persistence/repository"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/catalog"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/database"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/imagefetch"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/imagegen"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/metrics"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/pdf"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const (
	defaultPort           = 8080
	defaultTicketAttempts = 5
	janitorInterval       = time.Minute
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	getRoutes(ctx)

	port := envInt("PORT", defaultPort)
	log.Printf("[http][routes] listening port=%d", port)
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context) {
	ddb, tables := database.ConnectDynamoDB()
	recorder := metrics.NewPrometheusRecorder()

	designRepo := repository.NewHouseDesignDynamoRepository(ddb, tables.HouseDesigns)
	preQuoteRepo := repository.NewPreQuoteDynamoRepository(ddb, tables.PreQuotes)
	partnerRepo := repository.NewPartnerDynamoRepository(ddb, tables.Partners)

	sessions := repository.NewIntakeSessionMemoryStore(envDuration("INTAKE_SESSION_TTL", repository.DefaultIntakeSessionTTL))
	go sessions.RunJanitor(ctx, janitorInterval)

	houseDesignUseCase := usecase.NewHouseDesignUseCase(
		designRepo,
		imagegen.NewOpenAIImageGeneratorFromEnv(recorder),
		imagefetch.NewFetcher(nil),
		pdf.NewRenderer(),
		recorder,
	)
	preQuoteUseCase := usecase.NewPreQuoteUseCase(preQuoteRepo, designRepo, partnerRepo)
	partnerUseCase := usecase.NewPartnerUseCase(partnerRepo, catalog.MustFallback())

	machine := intake.NewMachine(
		houseDesignUseCase,
		preQuoteUseCase,
		intake.WithTicketAttempts(envInt("TICKET_MAX_ATTEMPTS", defaultTicketAttempts)),
	)
	intakeUseCase := usecase.NewIntakeUseCase(machine, sessions, partnerUseCase, recorder)

	intakeHandler := handlers.NewIntakeHandler(intakeUseCase)
	houseDesignHandler := handlers.NewHouseDesignHandler(houseDesignUseCase, "/v1"+PathAI+PathHouseDesign)
	preQuoteHandler := handlers.NewPreQuoteHandler(preQuoteUseCase)
	partnerHandler := handlers.NewPartnerHandler(partnerUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAssistantRoutes(v1, intakeHandler, preQuoteHandler, partnerHandler)
	addAIRoutes(v1, houseDesignHandler)
	addPartnerRoutes(v1, partnerHandler, preQuoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("[http][routes] ignoring invalid %s=%q", key, raw)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[http][routes] ignoring invalid %s=%q", key, raw)
		return def
	}
	return d
}
