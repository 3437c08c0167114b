package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/distromart/product-service/config"
	"github.com/distromart/product-service/internal/controller"
	"github.com/distromart/product-service/internal/infrastructure/database/mongodb"
	"github.com/distromart/product-service/internal/infrastructure/message-queue/kafka"
	"github.com/distromart/product-service/internal/infrastructure/objectstorage"
	"github.com/distromart/product-service/internal/infrastructure/tracing"
	"github.com/distromart/product-service/internal/middleware"
	"github.com/distromart/product-service/internal/repository"
	"github.com/distromart/product-service/internal/service"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}
	defer db.Client().Disconnect(context.Background())

	imageStore := objectstorage.CreateS3ImageStore(config.ObjectStorageConfig)

	var publisher service.EventPublisher = service.NoopPublisher{}
	if config.KafkaConfig.BrokerAddress != "" {
		publisher = kafka.CreateKafkaProducer(config)
	}

	e := echo.New()
	e.HideBanner = true

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		defer func() {
			if err := traceProvider.Shutdown(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to shut down tracing")
			}
		}()

		tracer := traceProvider.Tracer("product-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	e.Use(middleware.Logger)

	// Uncaught errors funnel through a single JSON formatting stage.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		statusCode := http.StatusInternalServerError
		message := "Internal server error"
		if httpErr, ok := err.(*echo.HTTPError); ok {
			statusCode = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		}

		c.JSON(statusCode, echo.Map{
			"success": false,
			"error":   message,
		})
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	if config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.HideBanner = true
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/api")

	mongoDBRepo := repository.CreateNewMongoDBRepository(db)
	svc := service.CreateProductService(mongoDBRepo, *config, imageStore, publisher)
	controller.CreateProductController(g, svc)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services": echo.Map{
				"database": "MongoDB",
				"storage":  "S3",
				"status":   "operational",
			},
		})
	})

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Distributor Management System API",
			"version": "2.0.0",
			"endpoints": echo.Map{
				"products": echo.Map{
					"getAll":     "GET /api/products?page=1&limit=10&category=Daily&status=active&search=name",
					"getOne":     "GET /api/products/:id",
					"create":     "POST /api/products",
					"update":     "PUT /api/products/:id",
					"delete":     "DELETE /api/products/:id",
					"options":    "GET /api/products/options",
					"byCategory": "GET /api/products/category/:category?page=1&limit=10",
					"stats":      "GET /api/products/stats/summary",
				},
				"system": echo.Map{
					"health": "GET /health",
				},
			},
		})
	})

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success":    false,
			"error":      fmt.Sprintf("Route %s not found", c.Request().URL.Path),
			"suggestion": "Try GET /api/products or GET /health",
		})
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
