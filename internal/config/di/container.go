package di

import (
	"github.com/sarulabs/di/v2"
	"github.com/tokenmart/market-ledger/internal/api"
	"github.com/tokenmart/market-ledger/internal/daemon"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/event"
	"github.com/tokenmart/market-ledger/internal/indexer"
	"github.com/tokenmart/market-ledger/internal/ledger"
	"github.com/tokenmart/market-ledger/internal/market"
	"github.com/tokenmart/market-ledger/internal/messenger"
	"github.com/tokenmart/market-ledger/internal/repository"
	"github.com/tokenmart/market-ledger/internal/treasury"
)

type Container struct {
	ctn di.Container
}

func NewContainer() (*Container, error) {
	builder, err := di.NewBuilder()
	if err != nil {
		return nil, err
	}

	if err := builder.Add(Definitions...); err != nil {
		return nil, err
	}

	return &Container{ctn: builder.Build()}, nil
}

func (c *Container) GetElastic() elastic_search.Index {
	return c.ctn.Get("elastic").(elastic_search.Index)
}

func (c *Container) GetEvents() *event.Manager {
	return c.ctn.Get("events").(*event.Manager)
}

func (c *Container) GetLedger() ledger.Ledger {
	return c.ctn.Get("ledger").(ledger.Ledger)
}

func (c *Container) GetTreasury() *treasury.Treasury {
	return c.ctn.Get("treasury").(*treasury.Treasury)
}

func (c *Container) GetRegistry() market.Registry {
	return c.ctn.Get("registry").(market.Registry)
}

func (c *Container) GetItemRepo() repository.ItemRepository {
	return c.ctn.Get("item.repo").(repository.ItemRepository)
}

func (c *Container) GetActionRepo() repository.ActionRepository {
	return c.ctn.Get("action.repo").(repository.ActionRepository)
}

func (c *Container) GetMessenger() messenger.MessageService {
	return c.ctn.Get("messenger").(messenger.MessageService)
}

func (c *Container) GetMarketIndexer() indexer.MarketIndexer {
	return c.ctn.Get("market.indexer").(indexer.MarketIndexer)
}

func (c *Container) GetMetadataIndexer() indexer.MetadataIndexer {
	return c.ctn.Get("metadata.indexer").(indexer.MetadataIndexer)
}

func (c *Container) GetApi() api.Server {
	return c.ctn.Get("api").(api.Server)
}

func (c *Container) GetDaemon() *daemon.Daemon {
	return c.ctn.Get("daemon").(*daemon.Daemon)
}
