package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	CacheBackendDynamoDB = "dynamodb"
	CacheBackendPebble   = "pebble"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	HTTPPort int
	GRPCPort int

	// Estimate cache
	CacheBackend        string
	EstimatesTable      string
	PebbleDir           string
	EstimateAbsoluteTTL time.Duration
	EstimateSlidingTTL  time.Duration
	EstimatePacing      time.Duration

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	// Upstream provider
	LyftBaseURL string
	LyftTimeout time.Duration

	// Internal services
	UsersServiceAddr    string
	ServicesServiceAddr string
	RegisterServices    bool
	InternalCallTimeout time.Duration

	// Ride lifecycle events; publishing is disabled when no broker is configured.
	KafkaBrokers         []string
	KafkaRideEventsTopic string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "lyft-client"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "info"))
	cfg.HTTPPort = cast.ToInt(getOrReturnDefault("HTTP_PORT", 8080))
	cfg.GRPCPort = cast.ToInt(getOrReturnDefault("GRPC_PORT", 50051))

	cfg.CacheBackend = strings.ToLower(cast.ToString(getOrReturnDefault("CACHE_BACKEND", CacheBackendDynamoDB)))
	cfg.EstimatesTable = cast.ToString(getOrReturnDefault("ESTIMATES_TABLE", "estimates"))
	cfg.PebbleDir = cast.ToString(getOrReturnDefault("PEBBLE_DIR", "./data/estimates"))
	cfg.EstimateAbsoluteTTL = cast.ToDuration(getOrReturnDefault("ESTIMATE_ABSOLUTE_TTL", "24h"))
	cfg.EstimateSlidingTTL = cast.ToDuration(getOrReturnDefault("ESTIMATE_SLIDING_TTL", "5h"))
	cfg.EstimatePacing = cast.ToDuration(getOrReturnDefault("ESTIMATE_PACING", "1s"))

	cfg.AWSRegion = cast.ToString(getOrReturnDefault("AWS_REGION", "us-east-1"))
	cfg.AWSAccessKeyID = cast.ToString(getOrReturnDefault("AWS_ACCESS_KEY_ID", "local"))
	cfg.AWSSecretAccessKey = cast.ToString(getOrReturnDefault("AWS_SECRET_ACCESS_KEY", "local"))
	cfg.DynamoDBEndpoint = cast.ToString(getOrReturnDefault("DYNAMODB_ENDPOINT", ""))

	cfg.LyftBaseURL = strings.TrimRight(cast.ToString(getOrReturnDefault("LYFT_BASE_URL", "https://api.lyft.com")), "/")
	cfg.LyftTimeout = cast.ToDuration(getOrReturnDefault("LYFT_TIMEOUT", "10s"))

	cfg.UsersServiceAddr = cast.ToString(getOrReturnDefault("USERS_SERVICE_ADDR", "users.api:7042"))
	cfg.ServicesServiceAddr = cast.ToString(getOrReturnDefault("SERVICES_SERVICE_ADDR", "services.api:7042"))
	cfg.RegisterServices = cast.ToBool(getOrReturnDefault("REGISTER_SERVICES", true))
	cfg.InternalCallTimeout = cast.ToDuration(getOrReturnDefault("INTERNAL_CALL_TIMEOUT", "5s"))

	cfg.KafkaBrokers = splitList(cast.ToString(getOrReturnDefault("KAFKA_BROKERS", "")))
	cfg.KafkaRideEventsTopic = cast.ToString(getOrReturnDefault("KAFKA_RIDE_EVENTS_TOPIC", "lyft.ride-events"))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
