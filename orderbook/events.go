package orderbook

// Trade is emitted for every match between a taker and a resting maker.
// Price is always the maker's resting price, per price-time priority:
// the side that was already waiting sets the execution price.
type Trade struct {
	TradeID         uint64
	Seq             uint64
	Symbol          string
	Price           Uint
	Quantity        Uint
	BuyOrderID      uint64
	SellOrderID     uint64
	AggressorSide   Side
	TimestampLogical uint64
}

// TakerOrderID returns the id of the order that crossed the book,
// derived from AggressorSide.
func (t Trade) TakerOrderID() uint64 {
	if t.AggressorSide == Buy {
		return t.BuyOrderID
	}
	return t.SellOrderID
}

// MakerOrderID returns the id of the resting order that supplied
// liquidity, derived from AggressorSide.
func (t Trade) MakerOrderID() uint64 {
	if t.AggressorSide == Buy {
		return t.SellOrderID
	}
	return t.BuyOrderID
}

// BookUpdateKind classifies a BookUpdate event.
type BookUpdateKind uint8

const (
	Added BookUpdateKind = iota + 1
	Modified
	Removed
)

func (k BookUpdateKind) String() string {
	switch k {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// BookUpdate reports a change to the resting state of one order: it was
// added to a price level, its resting position was modified, or it left
// the book (filled or cancelled). An IOC/FOK/Market residual that is
// discarded without ever resting produces no BookUpdate.
//
// NewAggregateQuantityAtLevel and NewOrderCountAtLevel are post-mutation
// values for the whole level the order sits (or sat) at, not the order's
// own residual — a subscriber reconstructing the book from the event
// stream needs the level's new totals, not just this one order's share
// of them. OrderID/Residual are carried alongside as a convenience for
// subscribers that also track individual order state.
type BookUpdate struct {
	Seq                          uint64
	Symbol                       string
	Kind                         BookUpdateKind
	Side                         Side
	Price                        Uint
	NewAggregateQuantityAtLevel Uint
	NewOrderCountAtLevel        int
	OrderID                      uint64
	Residual                     Uint
}

// BestPrices reports the current top of book. HasBid/HasAsk is false for
// a side with no resting orders.
type BestPrices struct {
	Seq              uint64
	Symbol           string
	BestBid          Uint
	BestBidSize      Uint
	HasBid           bool
	BestAsk          Uint
	BestAskSize      Uint
	HasAsk           bool
	TimestampLogical uint64
}

// DepthLevel is one row of a depth snapshot.
type DepthLevel struct {
	Price    Uint
	Quantity Uint
	Orders   int
}

// DepthSnapshot is the aggregated view of the top K levels of each side.
type DepthSnapshot struct {
	Symbol string
	Bids   []DepthLevel
	Asks   []DepthLevel
}
