package factory

import (
	"math/big"

	"github.com/tokenmart/market-ledger/internal/entity"
)

func CreateListingAction(item entity.MarketItem, seq uint64, fee *big.Int) entity.MarketAction {
	return entity.MarketAction{
		ItemId:  item.ItemId,
		TokenId: item.TokenId,
		Seq:     seq,
		Action:  entity.ListingAction,
		From:    item.Seller,
		To:      item.Owner,
		Price:   item.Price,
		Fee:     fee,
	}
}

func CreateSaleAction(item entity.MarketItem, seq uint64, fee *big.Int) entity.MarketAction {
	return entity.MarketAction{
		ItemId:  item.ItemId,
		TokenId: item.TokenId,
		Seq:     seq,
		Action:  entity.SaleAction,
		From:    item.Seller,
		To:      item.Owner,
		Price:   item.Price,
		Fee:     fee,
	}
}

func CreateRelistingAction(item entity.MarketItem, seq uint64, fee *big.Int) entity.MarketAction {
	return entity.MarketAction{
		ItemId:  item.ItemId,
		TokenId: item.TokenId,
		Seq:     seq,
		Action:  entity.RelistingAction,
		From:    item.Seller,
		To:      item.Owner,
		Price:   item.Price,
		Fee:     fee,
	}
}
