package database

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Config selects the DynamoDB account and tables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - DYNAMODB_CREATE_TABLES (optional; 1,true,yes,on creates missing tables at start)
//   - HOUSE_DESIGNS_TABLE, PRE_QUOTES_TABLE, PARTNERS_TABLE
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	CreateTables    bool
	Tables          Tables
}

// Tables holds the table names used by the repositories.
type Tables struct {
	HouseDesigns string
	PreQuotes    string
	Partners     string
}

func ConfigFromEnv() Config {
	return Config{
		Region:          getenvDefault("AWS_REGION", "us-east-1"),
		AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:        strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		CreateTables:    isEnabled(os.Getenv("DYNAMODB_CREATE_TABLES")),
		Tables: Tables{
			HouseDesigns: getenvDefault("HOUSE_DESIGNS_TABLE", "house_designs"),
			PreQuotes:    getenvDefault("PRE_QUOTES_TABLE", "pre_quotes"),
			Partners:     getenvDefault("PARTNERS_TABLE", "partners"),
		},
	}
}

// ConnectDynamoDB builds a client from the environment and, when requested,
// creates missing tables. It exits the process on failure.
func ConnectDynamoDB() (*dynamodb.Client, Tables) {
	ctx := context.Background()
	cfg := ConfigFromEnv()

	client, err := NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb client: %v", err)
	}
	if cfg.CreateTables {
		if err := EnsureTables(ctx, client, cfg.Tables); err != nil {
			log.Fatalf("failed to create dynamodb tables: %v", err)
		}
	}
	log.Printf("[database][dynamodb] client ready region=%s endpoint=%q", cfg.Region, cfg.Endpoint)
	return client, cfg.Tables
}

func NewClient(ctx context.Context, cfg Config) (*dynamodb.Client, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
