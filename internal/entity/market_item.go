package entity

import (
	"fmt"
	"math/big"

	"github.com/gosimple/slug"
)

type MarketItem struct {
	ItemId   uint64   `json:"itemId"`
	TokenId  uint64   `json:"tokenId"`
	Seller   string   `json:"seller"`
	Owner    string   `json:"owner"`
	Price    *big.Int `json:"price"`
	Sold     bool     `json:"sold"`
	TokenUri string   `json:"tokenUri"`

	HasMetadata   bool        `json:"hasMetadata"`
	MetadataError string      `json:"metadataError"`
	Metadata      interface{} `json:"metadata"`
}

func (m MarketItem) Slug() string {
	return CreateMarketItemSlug(m.ItemId)
}

func CreateMarketItemSlug(itemId uint64) string {
	return slug.Make(fmt.Sprintf("item-%d", itemId))
}

// Active items are the ones still offered for sale, held in market custody.
func (m MarketItem) Active() bool {
	return !m.Sold
}
