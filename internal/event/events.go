package event

type Type string

const (
	ItemCreatedEvent       Type = "ItemCreatedEvent"
	ItemSoldEvent          Type = "ItemSoldEvent"
	ItemRelistedEvent      Type = "ItemRelistedEvent"
	MetadataRefreshedEvent Type = "MetadataRefreshedEvent"
)
