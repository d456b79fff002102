package orderbook

// Publisher receives every event the book emits, in the order the book
// produced them. A single Submit/Cancel/Modify call can emit any number
// of Trade and BookUpdate events before a single closing BestPrices.
//
// Implementations must not block the caller for long: the book is
// single-threaded and synchronous, so a slow Publisher stalls matching
// itself. Collaborators that need to fan out further (NATS, websockets)
// should buffer internally (see internal/eventring) rather than here.
type Publisher interface {
	PublishTrade(Trade)
	PublishBookUpdate(BookUpdate)
	PublishBestPrices(BestPrices)
}

// NopPublisher discards every event. It is the book's default when no
// Publisher option is supplied.
type NopPublisher struct{}

func (NopPublisher) PublishTrade(Trade)           {}
func (NopPublisher) PublishBookUpdate(BookUpdate) {}
func (NopPublisher) PublishBestPrices(BestPrices) {}
