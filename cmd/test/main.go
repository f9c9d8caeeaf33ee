package main

import (
	"github.com/tokenmart/market-ledger/internal/config"
	"github.com/tokenmart/market-ledger/internal/config/di"
	"github.com/tokenmart/market-ledger/internal/dev"
)

func main() {
	config.Init()

	container, _ := di.NewContainer()

	item, _ := container.GetItemRepo().GetItemByItemId(1)
	dev.DD(item)

	//actions, _, _ := container.GetActionRepo().GetActionsByItemId(1, 10, 1)
	//dev.Dump(actions)
}
