package daemon

import (
	"net/http"

	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/api"
	"github.com/tokenmart/market-ledger/internal/config"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/event"
	"github.com/tokenmart/market-ledger/internal/indexer"
)

type Daemon struct {
	elastic         elastic_search.Index
	events          *event.Manager
	marketIndexer   indexer.MarketIndexer
	metadataIndexer indexer.MetadataIndexer
	api             api.Server
}

func NewDaemon(
	elastic elastic_search.Index,
	events *event.Manager,
	marketIndexer indexer.MarketIndexer,
	metadataIndexer indexer.MetadataIndexer,
	apiServer api.Server,
) *Daemon {
	return &Daemon{elastic, events, marketIndexer, metadataIndexer, apiServer}
}

func (d *Daemon) Execute() {
	d.elastic.InstallMappings()

	d.events.AddEventListener(event.ItemCreatedEvent, d.marketIndexer.IndexCreated)
	d.events.AddEventListener(event.ItemSoldEvent, d.marketIndexer.IndexSold)
	d.events.AddEventListener(event.ItemRelistedEvent, d.marketIndexer.IndexRelisted)
	d.events.AddEventListener(event.ItemCreatedEvent, d.metadataIndexer.TriggerMetadataRefresh)

	port := config.Get().ApiPort
	zap.L().With(zap.String("port", port)).Info("Market Ledger Started")

	if err := http.ListenAndServe(":"+port, d.api.Router()); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start api server")
	}
}
