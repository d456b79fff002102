package orderbook

// BookView is the read-only slice of book state a RiskGate is allowed to
// see while deciding whether to admit an order. It deliberately excludes
// any mutating method.
type BookView interface {
	Symbol() string
	BestBid() (Uint, bool)
	BestAsk() (Uint, bool)
}

// RiskGate is consulted once per order, before admission and before any
// book mutation. A non-nil error rejects the order; the book always
// returns RiskRejected carrying the gate error's message as its detail.
type RiskGate interface {
	Validate(order *Order, view BookView) error
}

// NopRiskGate admits every order. It is the book's default when no
// RiskGate option is supplied.
type NopRiskGate struct{}

func (NopRiskGate) Validate(*Order, BookView) error { return nil }
