package elastic_search

import (
	"fmt"

	"github.com/tokenmart/market-ledger/internal/config"
)

type Indices string

var (
	MarketItemIndex   Indices = "marketitem"
	MarketActionIndex Indices = "marketaction"
	DevErrorIndex     Indices = "deverror"
)

// Get prefixes the index with the network and index name.
func (i *Indices) Get() string {
	return fmt.Sprintf("%s.%s.%s", config.Get().Network, config.Get().Index, string(*i))
}
