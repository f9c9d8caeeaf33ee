package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/config"
	"github.com/tokenmart/market-ledger/internal/config/di"
	"github.com/tokenmart/market-ledger/internal/messenger"
	"github.com/tokenmart/market-ledger/internal/repository"
	"github.com/tokenmart/market-ledger/pkg/currency"
)

var (
	itemRepo         repository.ItemRepository
	actionRepo       repository.ActionRepository
	messengerService messenger.MessageService
)

func main() {
	config.Init()

	container, err := di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}

	itemRepo = container.GetItemRepo()
	actionRepo = container.GetActionRepo()
	messengerService = container.GetMessenger()

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "listings",
				Usage:  "Show every item currently offered for sale",
				Action: listings,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Value: 100, Usage: "page size"},
					&cli.IntFlag{Name: "page", Value: 1, Usage: "page number"},
				},
			},
			{
				Name:   "owned",
				Usage:  "Show items held by an address",
				Action: owned,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Required: true},
					&cli.IntFlag{Name: "size", Value: 100},
					&cli.IntFlag{Name: "page", Value: 1},
				},
			},
			{
				Name:   "listed",
				Usage:  "Show items an address has listed and pending sale",
				Action: listed,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Required: true},
					&cli.IntFlag{Name: "size", Value: 100},
					&cli.IntFlag{Name: "page", Value: 1},
				},
			},
			{
				Name:   "item",
				Usage:  "Show a single market item",
				Action: item,
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "id", Required: true},
				},
			},
			{
				Name:   "actions",
				Usage:  "Show the transition history of a market item",
				Action: actions,
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "id", Required: true},
					&cli.IntFlag{Name: "size", Value: 100},
					&cli.IntFlag{Name: "page", Value: 1},
				},
			},
			{
				Name:   "fee",
				Usage:  "Show the configured listing fee",
				Action: fee,
			},
			{
				Name:   "refreshMetadata",
				Usage:  "Queue an item for a metadata refresh",
				Action: refreshMetadata,
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "id", Required: true},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start CLI")
	}
}

func listings(c *cli.Context) error {
	items, total, err := itemRepo.GetActiveItems(c.Int("size"), c.Int("page"))
	if err != nil {
		return err
	}

	fmt.Printf("%d active listings\n", total)
	return printJson(items)
}

func owned(c *cli.Context) error {
	items, total, err := itemRepo.GetItemsOwnedBy(c.String("address"), c.Int("size"), c.Int("page"))
	if err != nil {
		return err
	}

	fmt.Printf("%d items owned by %s\n", total, c.String("address"))
	return printJson(items)
}

func listed(c *cli.Context) error {
	items, total, err := itemRepo.GetItemsListedBy(c.String("address"), c.Int("size"), c.Int("page"))
	if err != nil {
		return err
	}

	fmt.Printf("%d items listed by %s\n", total, c.String("address"))
	return printJson(items)
}

func item(c *cli.Context) error {
	result, err := itemRepo.GetItemByItemId(c.Uint64("id"))
	if err != nil {
		return err
	}

	return printJson(result)
}

func actions(c *cli.Context) error {
	results, total, err := actionRepo.GetActionsByItemId(c.Uint64("id"), c.Int("size"), c.Int("page"))
	if err != nil {
		return err
	}

	fmt.Printf("%d actions for item %d\n", total, c.Uint64("id"))
	return printJson(results)
}

func fee(c *cli.Context) error {
	fmt.Printf("listing fee: %s\n", currency.FormatAmount(config.Get().ListingFee))
	fmt.Printf("operator:    %s\n", config.Get().OperatorAddress)
	return nil
}

func refreshMetadata(c *cli.Context) error {
	body, err := json.Marshal(messenger.Msg{ItemId: c.Uint64("id")})
	if err != nil {
		return err
	}

	return messengerService.SendMessage(messenger.MetadataRefresh, body)
}

func printJson(el interface{}) error {
	out, err := json.MarshalIndent(el, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
