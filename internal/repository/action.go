package repository

import (
	"encoding/json"
	"errors"

	"github.com/olivere/elastic/v7"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/entity"
)

var (
	ErrActionNotFound = errors.New("market action not found")
)

type ActionRepository interface {
	GetActionsByItemId(itemId uint64, size, page int) ([]entity.MarketAction, int64, error)
	GetLatestActionByItemId(itemId uint64) (*entity.MarketAction, error)
}

type actionRepository struct {
	elastic elastic_search.Index
}

func NewActionRepository(elastic elastic_search.Index) ActionRepository {
	return actionRepository{elastic}
}

func (r actionRepository) GetActionsByItemId(itemId uint64, size, page int) ([]entity.MarketAction, int64, error) {
	from := size*page - size

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.MarketActionIndex.Get()).
		Query(elastic.NewTermQuery("itemId", itemId)).
		Sort("seq", true).
		Size(size).
		From(from))

	return r.findMany(results, err)
}

func (r actionRepository) GetLatestActionByItemId(itemId uint64) (*entity.MarketAction, error) {
	results, err := search(r.elastic.GetClient().
		Search(elastic_search.MarketActionIndex.Get()).
		Query(elastic.NewTermQuery("itemId", itemId)).
		Sort("seq", false).
		Size(1))

	return r.findOne(results, err)
}

func (r actionRepository) findOne(results *elastic.SearchResult, err error) (*entity.MarketAction, error) {
	if err != nil {
		return nil, err
	}

	if len(results.Hits.Hits) == 0 {
		return nil, ErrActionNotFound
	}

	var action entity.MarketAction
	hit := results.Hits.Hits[0]
	if err := json.Unmarshal(hit.Source, &action); err != nil {
		return nil, err
	}

	return &action, nil
}

func (r actionRepository) findMany(results *elastic.SearchResult, err error) ([]entity.MarketAction, int64, error) {
	actions := make([]entity.MarketAction, 0)

	if err != nil {
		return actions, 0, err
	}

	for _, hit := range results.Hits.Hits {
		var action entity.MarketAction
		if err := json.Unmarshal(hit.Source, &action); err == nil {
			actions = append(actions, action)
		}
	}

	return actions, results.TotalHits(), nil
}
