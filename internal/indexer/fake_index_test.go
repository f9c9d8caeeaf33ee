package indexer_test

import (
	"github.com/olivere/elastic/v7"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/entity"
)

// fakeIndex records requests instead of talking to elastic search.
type fakeIndex struct {
	requests []elastic_search.Request
	persists int
}

func (f *fakeIndex) GetClient() *elastic.Client { return nil }

func (f *fakeIndex) InstallMappings() {}

func (f *fakeIndex) AddIndexRequest(index string, e entity.Entity, reqAction elastic_search.RequestAction) {
	f.AddRequest(index, e, elastic_search.IndexRequest, reqAction)
}

func (f *fakeIndex) AddUpdateRequest(index string, e entity.Entity, reqAction elastic_search.RequestAction) {
	f.AddRequest(index, e, elastic_search.UpdateRequest, reqAction)
}

func (f *fakeIndex) HasRequest(e entity.Entity) bool {
	return f.GetRequest(e.Slug()) != nil
}

func (f *fakeIndex) AddRequest(index string, e entity.Entity, reqType elastic_search.RequestType, reqAction elastic_search.RequestAction) {
	f.requests = append(f.requests, elastic_search.Request{Index: index, Entity: e, Type: reqType, Action: reqAction})
}

func (f *fakeIndex) GetRequests() []elastic_search.Request {
	return f.requests
}

func (f *fakeIndex) GetRequest(id string) *elastic_search.Request {
	for idx := range f.requests {
		if f.requests[idx].Entity.Slug() == id {
			return &f.requests[idx]
		}
	}

	return nil
}

func (f *fakeIndex) ClearRequests() {
	f.requests = nil
}

func (f *fakeIndex) Save(index string, e entity.Entity) {}

func (f *fakeIndex) BatchPersist() bool { return false }

func (f *fakeIndex) Persist() int {
	f.persists++
	return len(f.requests)
}
