package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"

	"github.com/pennyflow/pennyflow_backend/cache"
	"github.com/pennyflow/pennyflow_backend/config"
	"github.com/pennyflow/pennyflow_backend/middlewares"
	"github.com/pennyflow/pennyflow_backend/models"
	"github.com/pennyflow/pennyflow_backend/workflow"
)

const defaultPort = "8080"

var tracer = otel.Tracer("pennyflow-backend")

func registerEnumValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("txcategory", func(fl validator.FieldLevel) bool {
		return models.TransactionCategory(fl.Field().String()).Valid()
	})
	v.RegisterValidation("txfrequency", func(fl validator.FieldLevel) bool {
		return models.Frequency(fl.Field().String()).Valid()
	})
}

func newRouter(loader *workflow.SnapshotLoader, store *models.RecordStore) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-Id"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	r.GET("/healthz", healthzHandler())

	api := r.Group("/api", middlewares.RequestIdMiddleware(), middlewares.AuthMiddleware())
	api.GET("/dashboard/load", dashboardHandler(loader, store))
	api.GET("/budgets/load", budgetsHandler(loader))
	api.GET("/transactions/get-by", transactionsHandler(loader))
	api.GET("/transactions/export", exportTransactionsHandler(store))

	return r
}

func main() {
	logger := config.GetLogger()
	registerEnumValidators()

	db := config.ConnectDatabaseWithRetry()
	if config.MigrateOnStart() {
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	var fieldStore cache.FieldStore
	if config.CacheDisabled() {
		log.Printf("CACHE_DISABLED set; serving every request from the record store")
		fieldStore = cache.NewNoopFieldStore()
	} else {
		fieldStore = cache.NewRedisFieldStore(config.ConnectRedisWithRetry())
	}

	store := models.NewRecordStore(db)
	userCache := cache.NewUserCache(fieldStore, config.CacheLifespan(), logger)
	loader := workflow.NewSnapshotLoader(store, userCache, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: newRouter(loader, store),
	}

	go func() {
		log.Printf("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}
