package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/feedback-board/internal/handlers"
	"github.com/sbilibin2017/feedback-board/internal/identity"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/middlewares"
	"github.com/sbilibin2017/feedback-board/internal/repositories"
	"github.com/sbilibin2017/feedback-board/internal/seed"
	"github.com/sbilibin2017/feedback-board/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/feedback-board/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title feedback-board API
// @version 1.0.0
// @description Community feedback board: submit feedback, upvote, comment
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, seedData := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		kafkaAddr, kafkaTopic,
		identitySecretKey, identityExpSecond, identityFallback,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		kafkaAddr, kafkaTopic,
		identitySecretKey, identityExpSecond, identityFallback,
		seedData,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags: the config file path and whether to
// insert the sample corpus at startup.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	s := flag.Bool("seed", false, "Insert the sample corpus at startup")
	flag.Parse()
	return *c, *s
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka and identity configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaAddr, kafkaTopic string,
	identitySecretKey string, identityExpSecond int, identityFallback string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; an empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "feedback-events")

	// Identity config
	identitySecretKey = getEnv("IDENTITY_SECRET_KEY", "my_super_secret_key")
	if identityExpSecond, err = strconv.Atoi(getEnv("IDENTITY_EXP_SECOND", "3600")); err != nil {
		return
	}
	identityFallback = getEnv("IDENTITY_FALLBACK_USER", "anonymous")

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaAddr, kafkaTopic string,
	identitySecretKey string, identityExpSecond int, identityFallback string,
	seedData bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer; nil when no address is configured, which makes event
	// publishing a no-op
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaAddr),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Identity provider
	who := identity.New(identitySecretKey, time.Duration(identityExpSecond)*time.Second, identityFallback)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	feedbackWriteRepo := repositories.NewFeedbackWriteRepository(db, middlewares.GetTxFromContext)
	feedbackReadRepo := repositories.NewFeedbackReadRepository(db, middlewares.GetTxFromContext)
	commentWriteRepo := repositories.NewCommentWriteRepository(db, middlewares.GetTxFromContext)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	upvoteWriteRepo := repositories.NewUpvoteWriteRepository(db, middlewares.GetTxFromContext)
	upvoteReadRepo := repositories.NewUpvoteReadRepository(db)
	upvotesCacheRepo := repositories.NewUserUpvotesCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)

	// Optional sample corpus
	if seedData {
		if err := seed.Run(ctx, userWriteRepo, feedbackWriteRepo, feedbackReadRepo, commentWriteRepo, upvoteWriteRepo); err != nil {
			logger.Log.Errorw("seeding failed", "error", err)
			return err
		}
	}

	// Initialize services
	feedbackService := services.NewFeedbackService(userWriteRepo, feedbackWriteRepo, feedbackReadRepo, commentReadRepo, kafkaWriter)
	voteService := services.NewVoteService(userWriteRepo, userReadRepo, feedbackReadRepo, feedbackWriteRepo, upvoteWriteRepo, upvoteReadRepo, upvotesCacheRepo, kafkaWriter)
	commentService := services.NewCommentService(userWriteRepo, commentWriteRepo, kafkaWriter)

	// Initialize handlers
	createFeedbackHandler := handlers.NewCreateFeedbackHandler(feedbackService, who)
	listFeedbackHandler := handlers.NewListFeedbackHandler(feedbackService)
	toggleUpvoteHandler := handlers.NewToggleUpvoteHandler(voteService, who)
	addCommentHandler := handlers.NewAddCommentHandler(commentService, who)
	userUpvotesHandler := handlers.NewUserUpvotesHandler(voteService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/api/feedback", listFeedbackHandler)
	r.Post("/api/feedback", createFeedbackHandler)
	r.Post("/api/feedback/{id}/comments", addCommentHandler)
	r.Get("/api/user/{username}/upvotes", userUpvotesHandler)

	// The toggle mutates the upvote row and the denormalized count; both
	// commit or roll back together
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/api/feedback/{id}/upvote", toggleUpvoteHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
