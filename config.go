package main

import (
	"context"
	"fmt"
	"os"

	aws_pkg "storefront-service/pkg/aws"
)

// Config holds all environment variables for the storefront service.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	MongoURL  string
	MongoDB   string
	RedisURL  string
	PGHost    string
	PGPort    string
	PGUser    string
	PGPass    string
	PGName    string

	S3Bucket    string
	S3Prefix    string
	S3PublicURL string

	AdminEmail     string
	AdminPassword  string
	SupportContact string
	OrderTopicARN  string
}

// LoadConfig reads the environment into a Config and validates it. With
// AWS_USE_SECRETS=true the JWT secret is read from Secrets Manager,
// falling back to the env var on failure.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("APP_ENV", "development"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		MongoURL: getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "storefront"),
		RedisURL: os.Getenv("REDIS_URL"),
		PGHost:   getEnv("POSTGRES_HOST", "localhost"),
		PGPort:   getEnv("POSTGRES_PORT", "5432"),
		PGUser:   os.Getenv("POSTGRES_USER"),
		PGPass:   os.Getenv("POSTGRES_PASSWORD"),
		PGName:   getEnv("POSTGRES_DB", "storefront"),

		S3Bucket:    getEnv("AWS_S3_BUCKET", "storefront"),
		S3Prefix:    getEnv("AWS_S3_PREFIX", "products/"),
		S3PublicURL: getEnv("AWS_S3_PUBLIC_URL", "http://localhost:4566"),

		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		SupportContact: os.Getenv("SUPPORT_CONTACT"),
		OrderTopicARN:  os.Getenv("ORDER_SNS_TOPIC_ARN"),
	}

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if awsCfg, err := aws_pkg.LoadAWSConfig(context.Background()); err == nil {
			sm := aws_pkg.NewSecretsClient(awsCfg)
			if jwt, err := sm.GetSecret(context.Background(), "storefront/JWT_SECRET"); err == nil && jwt != "" {
				cfg.JWTSecret = jwt
			}
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
