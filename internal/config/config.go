package config

import (
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/log"
	"github.com/tokenmart/market-ledger/pkg/currency"
)

type Config struct {
	Env     string
	Network string
	Index   string
	Debug   bool

	ListingFee      *big.Int
	OperatorAddress string
	MarketAddress   string

	ApiPort    string
	HealthPort string

	MetadataRetries int
	MetadataTimeout int

	ElasticSearch ElasticSearchConfig
	Aws           AwsConfig
}

type AwsConfig struct {
	AccessKey   string
	SecretKey   string
	Region      string
	QueuePrefix string
}

type ElasticSearchConfig struct {
	Hosts            []string
	Sniff            bool
	HealthCheck      bool
	Debug            bool
	Username         string
	Password         string
	MappingDir       string
	BulkPersistCount int
	Refresh          string
}

func Init() {
	if err := godotenv.Load(".env"); err != nil {
		zap.L().With(zap.Error(err)).Warn("Unable to load .env")
	}

	initLogger()
}

func initLogger() {
	log.NewLogger(Get().Debug)
}

func Get() *Config {
	return &Config{
		Env:             getString("ENV", ""),
		Network:         getString("NETWORK", "local"),
		Index:           getString("INDEX_NAME", "market"),
		Debug:           getBool("DEBUG", false),
		ListingFee:      getAmount("LISTING_FEE", "25"),
		OperatorAddress: getString("OPERATOR_ADDRESS", "0xoperator"),
		MarketAddress:   getString("MARKET_ADDRESS", "0xmarket"),
		ApiPort:         getString("API_PORT", "8080"),
		HealthPort:      getString("HEALTH_PORT", "8081"),
		MetadataRetries: getInt("METADATA_RETRIES", 3),
		MetadataTimeout: getInt("METADATA_TIMEOUT", 10),
		Aws: AwsConfig{
			AccessKey:   getString("AWS_ACCESS_KEY_ID", ""),
			SecretKey:   getString("AWS_SECRET_KEY_ID", ""),
			Region:      getString("AWS_REGION", ""),
			QueuePrefix: getString("AWS_QUEUE_PREFIX", ""),
		},
		ElasticSearch: ElasticSearchConfig{
			Hosts:            getSlice("ELASTIC_SEARCH_HOSTS", make([]string, 0), ","),
			Sniff:            getBool("ELASTIC_SEARCH_SNIFF", true),
			HealthCheck:      getBool("ELASTIC_SEARCH_HEALTH_CHECK", true),
			Debug:            getBool("ELASTIC_SEARCH_DEBUG", false),
			Username:         getString("ELASTIC_SEARCH_USERNAME", ""),
			Password:         getString("ELASTIC_SEARCH_PASSWORD", ""),
			MappingDir:       getString("ELASTIC_SEARCH_MAPPING_DIR", "/data/mappings"),
			BulkPersistCount: getInt("ELASTIC_SEARCH_BULK_PERSIST_COUNT", 300),
			Refresh:          getString("ELASTIC_SEARCH_REFRESH", "wait_for"),
		},
	}
}

func getString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getInt(key string, defaultValue int) int {
	valStr := getString(key, "")
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}

	return val
}

func getBool(key string, defaultValue bool) bool {
	valStr := getString(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultValue
}

func getSlice(key string, defaultVal []string, sep string) []string {
	valStr := getString(key, "")
	if valStr == "" {
		return defaultVal
	}

	return strings.Split(valStr, sep)
}

func getAmount(key string, defaultValue string) *big.Int {
	amount, err := currency.ParseAmount(getString(key, defaultValue))
	if err != nil {
		amount, _ = currency.ParseAmount(defaultValue)
	}

	return amount
}
