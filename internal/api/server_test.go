package api_test

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokenmart/market-ledger/internal/api"
	"github.com/tokenmart/market-ledger/internal/entity"
	"github.com/tokenmart/market-ledger/internal/event"
	"github.com/tokenmart/market-ledger/internal/ledger"
	"github.com/tokenmart/market-ledger/internal/market"
	"github.com/tokenmart/market-ledger/internal/payments"
	"github.com/tokenmart/market-ledger/internal/treasury"
)

const (
	custodian = "0xmarket"
	operator  = "0xoperator"
	seller    = "0xalice"
	buyer     = "0xbob"
)

var listingFee = big.NewInt(25)

func newServer(t *testing.T) (api.Server, market.Registry) {
	t.Helper()

	bank := payments.NewMemoryBank()
	feeTreasury := treasury.New(listingFee, operator, bank)
	registry := market.NewRegistry(custodian, ledger.NewMemoryLedger(), feeTreasury, bank, event.NewManager())

	return api.NewServer(registry, feeTreasury), registry
}

func get(t *testing.T, server api.Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	server, _ := newServer(t)

	rec := get(t, server, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestFee(t *testing.T) {
	server, _ := newServer(t)

	rec := get(t, server, "/fee")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "25", body["listingFee"])
	assert.Equal(t, operator, body["operator"])
}

func TestActiveItems(t *testing.T) {
	server, registry := newServer(t)

	_, err := registry.CreateItem(seller, "https://some-token.uri/", big.NewInt(100), listingFee)
	require.NoError(t, err)
	_, err = registry.CreateItem(seller, "https://some-token.uri/", big.NewInt(200), listingFee)
	require.NoError(t, err)

	rec := get(t, server, "/items")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []entity.MarketItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, uint64(1), items[0].ItemId)
	assert.Equal(t, uint64(2), items[1].ItemId)
}

func TestGetItem(t *testing.T) {
	server, registry := newServer(t)

	itemId, err := registry.CreateItem(seller, "https://some-token.uri/", big.NewInt(100), listingFee)
	require.NoError(t, err)

	rec := get(t, server, "/items/1")
	require.Equal(t, http.StatusOK, rec.Code)

	var item entity.MarketItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, itemId, item.ItemId)
	assert.Equal(t, seller, item.Seller)
	assert.False(t, item.Sold)
}

func TestGetItemNotFound(t *testing.T) {
	server, _ := newServer(t)

	rec := get(t, server, "/items/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemsOwnedBy(t *testing.T) {
	server, registry := newServer(t)

	itemId, err := registry.CreateItem(seller, "https://some-token.uri/", big.NewInt(100), listingFee)
	require.NoError(t, err)
	require.NoError(t, registry.ExecuteSale(buyer, itemId, big.NewInt(100)))

	rec := get(t, server, "/items/owned/"+buyer)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []entity.MarketItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, itemId, items[0].ItemId)
}

func TestItemsListedBy(t *testing.T) {
	server, registry := newServer(t)

	_, err := registry.CreateItem(seller, "https://some-token.uri/", big.NewInt(100), listingFee)
	require.NoError(t, err)

	rec := get(t, server, "/items/listed/"+seller)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []entity.MarketItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	rec = get(t, server, "/items/listed/"+buyer)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 0)
}

func TestUnknownRoute(t *testing.T) {
	server, _ := newServer(t)

	rec := get(t, server, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
