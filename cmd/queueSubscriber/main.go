package main

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go/service/sqs"
	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/config"
	"github.com/tokenmart/market-ledger/internal/config/di"
	"github.com/tokenmart/market-ledger/internal/dev"
	"github.com/tokenmart/market-ledger/internal/elastic_search"
	"github.com/tokenmart/market-ledger/internal/indexer"
	"github.com/tokenmart/market-ledger/internal/messenger"
)

var (
	messageService  messenger.MessageService
	metadataIndexer indexer.MetadataIndexer
	elastic         elastic_search.Index
)

func main() {
	config.Init()

	container, err := di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}

	messageService = container.GetMessenger()
	metadataIndexer = container.GetMetadataIndexer()
	elastic = container.GetElastic()

	pollMetadataRefresh()
}

func pollMetadataRefresh() {
	zap.L().Info("Subscribing to metadata refresh")
	messages := make(chan *sqs.Message, 10)
	go messageService.PollMessages(messenger.MetadataRefresh, messages)

	for message := range messages {
		var data messenger.Msg
		if err := json.Unmarshal([]byte(*message.Body), &data); err != nil {
			zap.L().With(zap.Error(err)).Error("Failed to read message")
			continue
		}
		zap.L().With(zap.Uint64("itemId", data.ItemId)).Info("Metadata refresh")

		if err := metadataIndexer.RefreshMetadata(data.ItemId); err != nil {
			zap.L().With(zap.Uint64("itemId", data.ItemId), zap.Error(err)).Error("Metadata refresh failed")
			elastic.Save(elastic_search.DevErrorIndex.Get(), dev.NewError(
				"queueSubscriber", "metadata.refresh", err, map[string]interface{}{"itemId": data.ItemId},
			))
		} else {
			zap.L().With(zap.Uint64("itemId", data.ItemId)).Info("Metadata refresh success")
		}

		if err := messageService.DeleteMessage(messenger.MetadataRefresh, message); err != nil {
			zap.L().With(zap.Error(err)).Error("Failed to delete message")
		}

		elastic.Persist()
	}
}
