package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/xid"

	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/util"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

const stewardBanner = `
   _____ __                             __
  / ___// /____ _      ______ __________/ /
  \__ \/ __/ _ \ | /| / / __ '/ ___/ __  /
 ___/ / /_/  __/ |/ |/ / /_/ / /  / /_/ /
/____/\__/\___/|__/|__/\__,_/_/   \__,_/
`

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
	goVersion    = "unknown"
)

func main() {

	fmt.Fprint(os.Stderr, stewardBanner)

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("Steward %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := util.Config{}
	configPath := os.Getenv("STEWARD_CONFIG")
	if configPath == "" {
		configPath = "/etc/steward/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config: ", err)
	}

	slog.Info(fmt.Sprintf("Config loaded! grants: %s", config.Steward.GrantsPath))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "steward/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "steward",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return xid.New().String()
		},
	}))

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	slog.Info("start migrate")
	db.AutoMigrate(
		&core.User{},
		&core.Property{},
		&core.WorkOrder{},
		&core.WorkOrderAssignment{},
	)

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "",
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	// compile the grant table before anything can accept traffic; a
	// partial table is a security defect, not a degraded feature
	grantService, err := SetupGrantService(config)
	if err != nil {
		slog.Error(fmt.Sprintf("failed to compile grant table: %v", err))
		panic(err)
	}

	permissionHandler := SetupPermissionHandler(grantService, config)
	actorHandler := SetupActorHandler(db, rdb, mc, grantService, config)
	workOrderHandler := SetupWorkOrderHandler(db, mc)
	authService := SetupAuthService(db, rdb, mc, grantService, config)

	apiV1 := e.Group("/api/v1", authService.IdentifyActor)

	// permission engine
	apiV1.POST("/permissions/check", permissionHandler.Check)
	apiV1.GET("/permissions/validate", permissionHandler.Validate)
	apiV1.GET("/roles/:role/permissions", permissionHandler.RolePermissions)
	apiV1.GET("/resources", permissionHandler.Resources)
	apiV1.GET("/resources/:resource/actions", permissionHandler.ResourceActions)
	apiV1.GET("/scopes", permissionHandler.Scopes)

	// actor
	apiV1.GET("/actors/:id", actorHandler.Get, authService.Restrict("user", "read"))
	apiV1.GET("/actors/:id/permissions", actorHandler.Permissions, authService.Restrict("user", "read"))
	apiV1.DELETE("/actors/:id/permissions", actorHandler.Invalidate, authService.Restrict("user", "update"))

	// work order
	apiV1.GET("/workorders/available", workOrderHandler.ListAvailable, authService.Restrict("maintenance", "read"))
	apiV1.GET("/workorders/:id", workOrderHandler.Get, authService.Restrict("maintenance", "read"))
	apiV1.POST("/workorders/:id/assignments", workOrderHandler.Assign, authService.Restrict("maintenance", "update"))

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var grantTableMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "steward_grant_table_size",
			Help: "compiled grant table dimensions",
		},
		[]string{"dimension"},
	)
	prometheus.MustRegister(grantTableMetrics)
	grantTableMetrics.WithLabelValues("resources").Set(float64(len(grantService.Resources())))
	grantTableMetrics.WithLabelValues("scopes").Set(float64(len(grantService.Scopes())))

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(":8000"))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
