package repository

import (
	"encoding/json"
	"errors"

	"github.com/olivere/elastic/v7"
	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/entity"
)

var (
	ErrItemNotFound = errors.New("market item not found")
)

type ItemRepository interface {
	GetActiveItems(size, page int) ([]entity.MarketItem, int64, error)
	GetItemsOwnedBy(addr string, size, page int) ([]entity.MarketItem, int64, error)
	GetItemsListedBy(addr string, size, page int) ([]entity.MarketItem, int64, error)
	GetItemByItemId(itemId uint64) (*entity.MarketItem, error)
}

type itemRepository struct {
	elastic elastic_search.Index
}

func NewItemRepository(elastic elastic_search.Index) ItemRepository {
	return itemRepository{elastic}
}

func (r itemRepository) GetActiveItems(size, page int) ([]entity.MarketItem, int64, error) {
	from := size*page - size

	zap.L().With(
		zap.Int("size", size),
		zap.Int("page", page),
		zap.Int("from", from),
	).Info("GetActiveItems")

	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("sold", false),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.MarketItemIndex.Get()).
		Query(query).
		Sort("itemId", true).
		Size(size).
		From(from))

	return r.findMany(results, err)
}

func (r itemRepository) GetItemsOwnedBy(addr string, size, page int) ([]entity.MarketItem, int64, error) {
	from := size*page - size

	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("owner.keyword", addr),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.MarketItemIndex.Get()).
		Query(query).
		Sort("itemId", true).
		Size(size).
		From(from))

	return r.findMany(results, err)
}

func (r itemRepository) GetItemsListedBy(addr string, size, page int) ([]entity.MarketItem, int64, error) {
	from := size*page - size

	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("seller.keyword", addr),
		elastic.NewTermQuery("sold", false),
	)

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.MarketItemIndex.Get()).
		Query(query).
		Sort("itemId", true).
		Size(size).
		From(from))

	return r.findMany(results, err)
}

func (r itemRepository) GetItemByItemId(itemId uint64) (*entity.MarketItem, error) {
	pendingRequest := r.elastic.GetRequest(entity.CreateMarketItemSlug(itemId))
	if pendingRequest != nil {
		pendingItem := pendingRequest.Entity.(entity.MarketItem)
		return &pendingItem, nil
	}

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.MarketItemIndex.Get()).
		Query(elastic.NewTermQuery("itemId", itemId)).
		Size(1))

	item, err := r.findOne(results, err)
	if err != nil && errors.Is(err, ErrItemNotFound) {
		zap.S().Warnf("%s: %d", err.Error(), itemId)
	}

	return item, err
}

func (r itemRepository) findOne(results *elastic.SearchResult, err error) (*entity.MarketItem, error) {
	if err != nil {
		return nil, err
	}

	if len(results.Hits.Hits) == 0 {
		return nil, ErrItemNotFound
	}

	var item entity.MarketItem
	hit := results.Hits.Hits[0]
	if err := json.Unmarshal(hit.Source, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r itemRepository) findMany(results *elastic.SearchResult, err error) ([]entity.MarketItem, int64, error) {
	items := make([]entity.MarketItem, 0)

	if err != nil {
		return items, 0, err
	}

	for _, hit := range results.Hits.Hits {
		var item entity.MarketItem
		if err := json.Unmarshal(hit.Source, &item); err == nil {
			items = append(items, item)
		}
	}

	return items, results.TotalHits(), nil
}
