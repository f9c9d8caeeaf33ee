package entity

import (
	"crypto/md5"
	"fmt"
	"math/big"
)

type MarketAction struct {
	ItemId  uint64     `json:"itemId"`
	TokenId uint64     `json:"tokenId"`
	Seq     uint64     `json:"seq"`
	Action  ActionType `json:"action"`
	From    string     `json:"from"`
	To      string     `json:"to"`
	Price   *big.Int   `json:"price"`
	Fee     *big.Int   `json:"fee"`
}

type ActionType string

const (
	ListingAction   ActionType = "listing"
	SaleAction      ActionType = "sale"
	RelistingAction ActionType = "relisting"
)

func (a MarketAction) Slug() string {
	return CreateMarketActionSlug(a.ItemId, a.Seq, string(a.Action))
}

func CreateMarketActionSlug(itemId, seq uint64, action string) string {
	data := []byte(fmt.Sprintf("marketaction-%d-%d-%s", itemId, seq, action))
	return fmt.Sprintf("%x", md5.Sum(data))
}
