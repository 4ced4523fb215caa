package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"laundry/cmd"
	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/adapters/out/rediscache"
	s3store "laundry/internal/adapters/out/s3"
	"laundry/internal/jobs"

	_ "laundry/docs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Laundry Admin API
// @version 1.0
// @description Admin dashboard API for a laundry business: order composition, lifecycle tracking, customers and the service catalog.
// @BasePath /api/v1
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	redisClient := mustConnectRedis(configs)
	s3Client := mustCreateS3Client(configs)

	statsCache := rediscache.NewStatsCacheAdapter(redisClient)
	proofStore := s3store.NewProofStoreAdapter(s3Client, configs.S3Bucket)

	app := cmd.NewCompositionRoot(configs, gormDB, statsCache, proofStore)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetDashboardStatsQueryHandler(),
		statsCache,
		configs.StatsRefreshInterval,
		configs.StatsSnapshotTTL,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		S3Endpoint:        goDotEnvVariable("S3_ENDPOINT"),
		S3Region:          goDotEnvVariable("S3_REGION"),
		S3AccessKeyID:     goDotEnvVariable("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: goDotEnvVariable("S3_SECRET_ACCESS_KEY"),
		S3Bucket:          goDotEnvVariable("S3_BUCKET"),

		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		AdminUsername: goDotEnvVariable("ADMIN_USERNAME"),
		AdminPassword: goDotEnvVariable("ADMIN_PASSWORD"),
		TokenTTL:      envDuration("TOKEN_TTL", 12*time.Hour),

		StatsRefreshInterval: envDuration("STATS_REFRESH_INTERVAL", 5*time.Second),
		StatsSnapshotTTL:     envDuration("STATS_SNAPSHOT_TTL", 30*time.Second),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envInt(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&customerrepo.CustomerDTO{},
		&servicerepo.ServiceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func mustConnectRedis(configs cmd.Config) redis.UniversalClient {
	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	return client
}

func mustCreateS3Client(configs cmd.Config) *s3.Client {
	creds := credentials.NewStaticCredentialsProvider(
		configs.S3AccessKeyID,
		configs.S3SecretAccessKey,
		"",
	)

	region := configs.S3Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		log.Fatalf("Failed to load object storage config: %v", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if configs.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(configs.S3Endpoint)
			// MinIO and R2 serve buckets by path, not subdomain.
			o.UsePathStyle = true
		}
	})
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	metrics := httpadapter.NewMetrics(nil)
	e.Use(metrics.Middleware)
	httpadapter.RegisterMetricsRoute(e)

	auth := httpadapter.NewAuthenticator(
		configs.JWTSecret,
		configs.AdminUsername,
		configs.AdminPassword,
		configs.TokenTTL,
	)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateMarkOrderReadyCommandHandler(),
		app.CreateMarkOrderPaidCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateCustomerCommandHandler(),
		app.CreateTopUpDepositCommandHandler(),
		app.CreateCreateServiceCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateSearchCustomersQueryHandler(),
		app.CreateGetServicesQueryHandler(),
		app.CreateGetDashboardStatsQueryHandler(),
		app.CustomerRepository(),
		app.ServiceRepository(),
		app.ProofStore(),
	)
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
