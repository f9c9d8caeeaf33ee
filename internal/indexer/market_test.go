package indexer_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/entity"
	"github.com/tokenmart/market-ledger/internal/indexer"
	"github.com/tokenmart/market-ledger/internal/payments"
	"github.com/tokenmart/market-ledger/internal/treasury"
)

func newMarketIndexer() (indexer.MarketIndexer, *fakeIndex) {
	elastic := &fakeIndex{}
	feeTreasury := treasury.New(big.NewInt(25), "0xoperator", payments.NewMemoryBank())

	return indexer.NewMarketIndexer(elastic, feeTreasury), elastic
}

func listedItem() entity.MarketItem {
	return entity.MarketItem{
		ItemId:  1,
		TokenId: 9,
		Seller:  "0xalice",
		Owner:   "0xmarket",
		Price:   big.NewInt(100),
	}
}

func TestIndexCreatedProjectsItemAndAction(t *testing.T) {
	marketIndexer, elastic := newMarketIndexer()

	marketIndexer.IndexCreated(listedItem())

	require.Len(t, elastic.requests, 2)

	itemReq := elastic.requests[0]
	assert.Equal(t, elastic_search.MarketItemIndex.Get(), itemReq.Index)
	assert.Equal(t, elastic_search.IndexRequest, itemReq.Type)
	assert.Equal(t, elastic_search.ItemCreate, itemReq.Action)

	actionReq := elastic.requests[1]
	assert.Equal(t, elastic_search.MarketActionIndex.Get(), actionReq.Index)
	action := actionReq.Entity.(entity.MarketAction)
	assert.Equal(t, entity.ListingAction, action.Action)
	assert.Equal(t, uint64(1), action.Seq)
	assert.Equal(t, big.NewInt(25), action.Fee)

	assert.Equal(t, 1, elastic.persists)
}

func TestIndexSoldProjectsUpdateAndSaleAction(t *testing.T) {
	marketIndexer, elastic := newMarketIndexer()

	item := listedItem()
	marketIndexer.IndexCreated(item)

	item.Sold = true
	item.Owner = "0xbob"
	marketIndexer.IndexSold(item)

	require.Len(t, elastic.requests, 4)

	itemReq := elastic.requests[2]
	assert.Equal(t, elastic_search.UpdateRequest, itemReq.Type)
	assert.Equal(t, elastic_search.ItemSale, itemReq.Action)

	action := elastic.requests[3].Entity.(entity.MarketAction)
	assert.Equal(t, entity.SaleAction, action.Action)
	assert.Equal(t, uint64(2), action.Seq)
	assert.Equal(t, "0xbob", action.To)
}

func TestIndexRelistedProjectsUpdateAndRelistingAction(t *testing.T) {
	marketIndexer, elastic := newMarketIndexer()

	item := listedItem()
	item.Seller = "0xbob"
	item.Price = big.NewInt(150)
	marketIndexer.IndexRelisted(item)

	require.Len(t, elastic.requests, 2)
	assert.Equal(t, elastic_search.ItemRelist, elastic.requests[0].Action)

	action := elastic.requests[1].Entity.(entity.MarketAction)
	assert.Equal(t, entity.RelistingAction, action.Action)
	assert.Equal(t, big.NewInt(150), action.Price)
}

func TestIndexCreatedIgnoresInvalidPayload(t *testing.T) {
	marketIndexer, elastic := newMarketIndexer()

	marketIndexer.IndexCreated("not an item")

	assert.Len(t, elastic.requests, 0)
	assert.Equal(t, 0, elastic.persists)
}
