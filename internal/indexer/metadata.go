package indexer

import (
	"encoding/json"

	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/entity"
	"github.com/tokenmart/market-ledger/internal/event"
	"github.com/tokenmart/market-ledger/internal/messenger"
	"github.com/tokenmart/market-ledger/internal/metadata"
	"github.com/tokenmart/market-ledger/internal/repository"
)

type MetadataIndexer interface {
	TriggerMetadataRefresh(msg interface{})
	RefreshMetadata(itemId uint64) error
}

type metadataIndexer struct {
	elastic   elastic_search.Index
	itemRepo  repository.ItemRepository
	metadata  metadata.Service
	messenger messenger.MessageService
	events    *event.Manager
}

func NewMetadataIndexer(
	elastic elastic_search.Index,
	itemRepo repository.ItemRepository,
	metadataService metadata.Service,
	messageService messenger.MessageService,
	events *event.Manager,
) MetadataIndexer {
	return metadataIndexer{elastic, itemRepo, metadataService, messageService, events}
}

// TriggerMetadataRefresh queues an item for a metadata fetch.
func (i metadataIndexer) TriggerMetadataRefresh(msg interface{}) {
	item, ok := msg.(entity.MarketItem)
	if !ok {
		zap.L().Error("MetadataIndexer: Invalid refresh payload")
		return
	}

	body, err := json.Marshal(messenger.Msg{ItemId: item.ItemId})
	if err != nil {
		zap.L().With(zap.Error(err)).Error("MetadataIndexer: Failed to marshal refresh message")
		return
	}

	if err := i.messenger.SendMessage(messenger.MetadataRefresh, body); err != nil {
		zap.L().With(zap.Error(err), zap.Uint64("itemId", item.ItemId)).
			Error("MetadataIndexer: Failed to queue metadata refresh")
		return
	}

	zap.L().With(zap.Uint64("itemId", item.ItemId)).Info("MetadataIndexer: Queued metadata refresh")
}

// RefreshMetadata fetches the token uri document for a projected item and
// writes the result back to the item index.
func (i metadataIndexer) RefreshMetadata(itemId uint64) error {
	item, err := i.itemRepo.GetItemByItemId(itemId)
	if err != nil {
		return err
	}

	md, err := i.metadata.GetMetadata(*item)
	if err != nil {
		item.HasMetadata = false
		item.MetadataError = err.Error()
		item.Metadata = nil

		zap.L().With(zap.Error(err), zap.Uint64("itemId", itemId)).Warn("MetadataIndexer: Metadata fetch failed")
	} else {
		item.HasMetadata = true
		item.MetadataError = ""
		item.Metadata = md
	}

	i.elastic.AddUpdateRequest(elastic_search.MarketItemIndex.Get(), *item, elastic_search.ItemMetadata)
	i.events.EmitEvent(event.MetadataRefreshedEvent, *item)

	return nil
}
