package indexer

import (
	"sync/atomic"

	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/entity"
	"github.com/tokenmart/market-ledger/internal/factory"
	"github.com/tokenmart/market-ledger/internal/treasury"
)

// MarketIndexer projects registry events into the elastic search indexes:
// one document per item, one action document per transition.
type MarketIndexer interface {
	IndexCreated(msg interface{})
	IndexSold(msg interface{})
	IndexRelisted(msg interface{})
}

type marketIndexer struct {
	elastic  elastic_search.Index
	treasury *treasury.Treasury
	seq      uint64
}

func NewMarketIndexer(elastic elastic_search.Index, feeTreasury *treasury.Treasury) MarketIndexer {
	return &marketIndexer{elastic: elastic, treasury: feeTreasury}
}

func (i *marketIndexer) IndexCreated(msg interface{}) {
	item, ok := msg.(entity.MarketItem)
	if !ok {
		zap.L().Error("MarketIndexer: Invalid created payload")
		return
	}

	zap.L().With(
		zap.Uint64("itemId", item.ItemId),
		zap.String("seller", item.Seller),
		zap.String("price", item.Price.String()),
	).Info("MarketIndexer: Index listing")

	i.elastic.AddIndexRequest(elastic_search.MarketItemIndex.Get(), item, elastic_search.ItemCreate)
	i.elastic.AddIndexRequest(
		elastic_search.MarketActionIndex.Get(),
		factory.CreateListingAction(item, i.nextSeq(), i.treasury.CurrentFee()),
		elastic_search.ActionCreate,
	)

	i.elastic.Persist()
}

func (i *marketIndexer) IndexSold(msg interface{}) {
	item, ok := msg.(entity.MarketItem)
	if !ok {
		zap.L().Error("MarketIndexer: Invalid sale payload")
		return
	}

	zap.L().With(
		zap.Uint64("itemId", item.ItemId),
		zap.String("seller", item.Seller),
		zap.String("buyer", item.Owner),
		zap.String("price", item.Price.String()),
	).Info("MarketIndexer: Index sale")

	i.elastic.AddUpdateRequest(elastic_search.MarketItemIndex.Get(), item, elastic_search.ItemSale)
	i.elastic.AddIndexRequest(
		elastic_search.MarketActionIndex.Get(),
		factory.CreateSaleAction(item, i.nextSeq(), i.treasury.CurrentFee()),
		elastic_search.ActionCreate,
	)

	i.elastic.Persist()
}

func (i *marketIndexer) IndexRelisted(msg interface{}) {
	item, ok := msg.(entity.MarketItem)
	if !ok {
		zap.L().Error("MarketIndexer: Invalid relisting payload")
		return
	}

	zap.L().With(
		zap.Uint64("itemId", item.ItemId),
		zap.String("seller", item.Seller),
		zap.String("price", item.Price.String()),
	).Info("MarketIndexer: Index relisting")

	i.elastic.AddUpdateRequest(elastic_search.MarketItemIndex.Get(), item, elastic_search.ItemRelist)
	i.elastic.AddIndexRequest(
		elastic_search.MarketActionIndex.Get(),
		factory.CreateRelistingAction(item, i.nextSeq(), i.treasury.CurrentFee()),
		elastic_search.ActionCreate,
	)

	i.elastic.Persist()
}

func (i *marketIndexer) nextSeq() uint64 {
	return atomic.AddUint64(&i.seq, 1)
}
