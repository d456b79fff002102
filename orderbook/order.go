package orderbook

import (
	"github.com/lobcore/engine/internal/dlist"
	"github.com/lobcore/engine/internal/rbtree"
)

// Side identifies which side of the book an order belongs to.
type Side uint8

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// Kind is the order type: limit (priced) or market (unpriced, sweeps the
// book until filled or the opposite side is exhausted).
type Kind uint8

const (
	Limit Kind = iota + 1
	Market
)

func (k Kind) String() string {
	switch k {
	case Limit:
		return "limit"
	case Market:
		return "market"
	default:
		return "unknown"
	}
}

// TimeInForce selects what happens to an order's residual quantity once
// it stops being immediately matchable.
type TimeInForce uint8

const (
	// GTC rests any residual on the book until cancelled or fully filled.
	GTC TimeInForce = iota + 1
	// IOC discards any residual immediately, no resting.
	IOC
	// FOK requires the entire order to match immediately, or none of it
	// does (checked, and enforced, before any mutation).
	FOK
)

func (t TimeInForce) String() string {
	switch t {
	case GTC:
		return "gtc"
	case IOC:
		return "ioc"
	case FOK:
		return "fok"
	default:
		return "unknown"
	}
}

// Order is the book's record of one order. ID, Side, Kind and
// TimeInForce are immutable after admission; FilledQuantity grows as the
// order matches, and Book.Modify may amend LimitPrice and
// OriginalQuantity of a resting order.
type Order struct {
	id          uint64
	symbol      string
	account     string
	side        Side
	kind        Kind
	tif         TimeInForce
	limitPrice  Uint
	originalQty Uint
	filledQty   Uint

	// admitTime is assigned by Book.Submit and used solely as a
	// same-price tie-breaker; it is not a wall-clock timestamp.
	admitTime uint64

	// Back-pointers into the ladder this order currently rests on, nil
	// unless the order is resting. They let cancel/modify locate the
	// order's queue position in O(1) without a second lookup.
	levelNode *rbtree.Node[Uint, *PriceLevel]
	queueElem *dlist.Element[*Order]
}

// NewOrder constructs an order ready for submission. AdmitTime, and the
// ladder back-pointers, are assigned internally by the book.
func NewOrder(id uint64, side Side, kind Kind, tif TimeInForce, limitPrice, quantity Uint, symbol, account string) *Order {
	return &Order{
		id:          id,
		symbol:      symbol,
		account:     account,
		side:        side,
		kind:        kind,
		tif:         tif,
		limitPrice:  limitPrice,
		originalQty: quantity,
	}
}

func (o *Order) ID() uint64             { return o.id }
func (o *Order) Symbol() string         { return o.symbol }
func (o *Order) Account() string        { return o.account }
func (o *Order) Side() Side             { return o.side }
func (o *Order) Kind() Kind             { return o.kind }
func (o *Order) TimeInForce() TimeInForce { return o.tif }
func (o *Order) LimitPrice() Uint       { return o.limitPrice }
func (o *Order) OriginalQuantity() Uint { return o.originalQty }
func (o *Order) FilledQuantity() Uint   { return o.filledQty }
func (o *Order) AdmitTime() uint64      { return o.admitTime }

// Remaining returns the order's unfilled quantity.
func (o *Order) Remaining() Uint {
	return o.originalQty.Sub(o.filledQty)
}

// IsFilled reports whether the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.Remaining().IsZero()
}

// IsResting reports whether the order currently occupies a queue slot on
// the book (as opposed to being a taker mid-match or discarded).
func (o *Order) IsResting() bool {
	return o.queueElem != nil
}

func (o *Order) isBuy() bool { return o.side == Buy }
