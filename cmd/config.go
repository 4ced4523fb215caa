package cmd

import "time"

// Config carries everything the process reads from its environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Bucket          string

	JWTSecret     string
	AdminUsername string
	AdminPassword string
	TokenTTL      time.Duration

	StatsRefreshInterval time.Duration
	StatsSnapshotTTL     time.Duration
}
