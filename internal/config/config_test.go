package config_test

import (
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tokenmart/market-ledger/internal/config"
)

func TestGetDefaults(t *testing.T) {
	os.Clearenv()

	cfg := config.Get()

	assert.Equal(t, "local", cfg.Network)
	assert.Equal(t, "market", cfg.Index)
	assert.False(t, cfg.Debug)
	assert.Equal(t, big.NewInt(25), cfg.ListingFee)
	assert.Equal(t, "0xmarket", cfg.MarketAddress)
	assert.Equal(t, "0xoperator", cfg.OperatorAddress)
	assert.Equal(t, "8080", cfg.ApiPort)
	assert.Equal(t, 3, cfg.MetadataRetries)
}

func TestGetReadsEnvironment(t *testing.T) {
	os.Clearenv()
	os.Setenv("LISTING_FEE", "1000000000000")
	os.Setenv("DEBUG", "true")
	os.Setenv("OPERATOR_ADDRESS", "0xfeecollector")
	os.Setenv("ELASTIC_SEARCH_HOSTS", "http://es1:9200,http://es2:9200")
	defer os.Clearenv()

	cfg := config.Get()

	assert.Equal(t, "1000000000000", cfg.ListingFee.String())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "0xfeecollector", cfg.OperatorAddress)
	assert.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.ElasticSearch.Hosts)
}

func TestGetFallsBackOnBadAmount(t *testing.T) {
	os.Clearenv()
	os.Setenv("LISTING_FEE", "not-a-number")
	defer os.Clearenv()

	cfg := config.Get()

	assert.Equal(t, big.NewInt(25), cfg.ListingFee)
}
