package di

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sarulabs/di/v2"
	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/api"
	"github.com/tokenmart/market-ledger/internal/config"
	"github.com/tokenmart/market-ledger/internal/daemon"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/event"
	"github.com/tokenmart/market-ledger/internal/indexer"
	"github.com/tokenmart/market-ledger/internal/ledger"
	"github.com/tokenmart/market-ledger/internal/market"
	"github.com/tokenmart/market-ledger/internal/messenger"
	"github.com/tokenmart/market-ledger/internal/metadata"
	"github.com/tokenmart/market-ledger/internal/payments"
	"github.com/tokenmart/market-ledger/internal/repository"
	"github.com/tokenmart/market-ledger/internal/treasury"
)

var Definitions = []di.Def{
	{
		Name: "elastic",
		Build: func(ctn di.Container) (interface{}, error) {
			elastic, err := elastic_search.New()
			if err != nil {
				zap.L().With(zap.Error(err)).Fatal("Failed to start ES")
			}

			return elastic, nil
		},
	},
	{
		Name: "events",
		Build: func(ctn di.Container) (interface{}, error) {
			return event.NewManager(), nil
		},
	},
	{
		Name: "bank",
		Build: func(ctn di.Container) (interface{}, error) {
			return payments.NewMemoryBank(), nil
		},
	},
	{
		Name: "ledger",
		Build: func(ctn di.Container) (interface{}, error) {
			return ledger.NewMemoryLedger(), nil
		},
	},
	{
		Name: "treasury",
		Build: func(ctn di.Container) (interface{}, error) {
			return treasury.New(
				config.Get().ListingFee,
				config.Get().OperatorAddress,
				ctn.Get("bank").(payments.Bank),
			), nil
		},
	},
	{
		Name: "registry",
		Build: func(ctn di.Container) (interface{}, error) {
			return market.NewRegistry(
				config.Get().MarketAddress,
				ctn.Get("ledger").(ledger.Ledger),
				ctn.Get("treasury").(*treasury.Treasury),
				ctn.Get("bank").(payments.Bank),
				ctn.Get("events").(*event.Manager),
			), nil
		},
	},
	{
		Name: "item.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewItemRepository(ctn.Get("elastic").(elastic_search.Index)), nil
		},
	},
	{
		Name: "action.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewActionRepository(ctn.Get("elastic").(elastic_search.Index)), nil
		},
	},
	{
		Name: "sqs",
		Build: func(ctn di.Container) (interface{}, error) {
			sess, err := session.NewSession(&aws.Config{
				Region: aws.String(config.Get().Aws.Region),
				Credentials: credentials.NewStaticCredentials(
					config.Get().Aws.AccessKey,
					config.Get().Aws.SecretKey,
					"",
				),
			})
			if err != nil {
				zap.L().With(zap.Error(err)).Fatal("Failed to create AWS session")
			}

			return sqs.New(sess), nil
		},
	},
	{
		Name: "messenger",
		Build: func(ctn di.Container) (interface{}, error) {
			return messenger.NewMessenger(ctn.Get("sqs").(*sqs.SQS)), nil
		},
	},
	{
		Name: "metadata.service",
		Build: func(ctn di.Container) (interface{}, error) {
			client := retryablehttp.NewClient()
			client.RetryMax = config.Get().MetadataRetries
			client.HTTPClient.Timeout = time.Duration(config.Get().MetadataTimeout) * time.Second
			client.Logger = nil

			return metadata.NewMetadataService(client), nil
		},
	},
	{
		Name: "market.indexer",
		Build: func(ctn di.Container) (interface{}, error) {
			return indexer.NewMarketIndexer(
				ctn.Get("elastic").(elastic_search.Index),
				ctn.Get("treasury").(*treasury.Treasury),
			), nil
		},
	},
	{
		Name: "metadata.indexer",
		Build: func(ctn di.Container) (interface{}, error) {
			return indexer.NewMetadataIndexer(
				ctn.Get("elastic").(elastic_search.Index),
				ctn.Get("item.repo").(repository.ItemRepository),
				ctn.Get("metadata.service").(metadata.Service),
				ctn.Get("messenger").(messenger.MessageService),
				ctn.Get("events").(*event.Manager),
			), nil
		},
	},
	{
		Name: "api",
		Build: func(ctn di.Container) (interface{}, error) {
			return api.NewServer(
				ctn.Get("registry").(market.Registry),
				ctn.Get("treasury").(*treasury.Treasury),
			), nil
		},
	},
	{
		Name: "daemon",
		Build: func(ctn di.Container) (interface{}, error) {
			return daemon.NewDaemon(
				ctn.Get("elastic").(elastic_search.Index),
				ctn.Get("events").(*event.Manager),
				ctn.Get("market.indexer").(indexer.MarketIndexer),
				ctn.Get("metadata.indexer").(indexer.MetadataIndexer),
				ctn.Get("api").(api.Server),
			), nil
		},
	},
}
