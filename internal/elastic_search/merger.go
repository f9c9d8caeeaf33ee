package elastic_search

import (
	"github.com/tokenmart/market-ledger/internal/entity"
)

// mergeRequests folds a new request for an entity into the one already
// pending, so a metadata update does not clobber a newer item state and
// vice versa.
func mergeRequests(index string, cached Request, action RequestAction, e entity.Entity) entity.Entity {
	switch index {
	case MarketItemIndex.Get():
		result := cached.Entity.(entity.MarketItem)
		if action == ItemMetadata {
			item := e.(entity.MarketItem)
			result.HasMetadata = item.HasMetadata
			result.MetadataError = item.MetadataError
			result.Metadata = item.Metadata
		} else {
			item := e.(entity.MarketItem)
			item.HasMetadata = result.HasMetadata
			item.MetadataError = result.MetadataError
			item.Metadata = result.Metadata
			result = item
		}
		return result

	case MarketActionIndex.Get():
		return cached.Entity.(entity.MarketAction)
	}

	return e
}
