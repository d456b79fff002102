// Package simple provides a reference orderbook.RiskGate: a
// size/price ceiling plus a per-account net position limit. spec.md
// defines the RiskGate interface but deliberately leaves any concrete
// check out of the core's scope (§1, §6.3); this mirrors the original
// system's RiskManager, which enforced a max order size and max price
// (Risk/RiskManager.cpp), extended with the per-account exposure check
// the original's risk layer implies but never actually implements.
package simple

import (
	"fmt"
	"sync"

	"github.com/lobcore/engine/orderbook"
)

// Gate rejects an order if its size or price exceeds a configured
// ceiling, or if admitting it would push the account's net position
// (signed: long positive, short negative) beyond MaxNetPosition.
//
// Gate only tracks net position from orders it has itself accepted; it
// has no visibility into fills (those happen after admission) and is
// therefore a pre-trade sizing check, not a real-time exposure monitor
// — exactly the boundary spec.md §6.3 describes ("consulted once per
// order, before admission").
type Gate struct {
	MaxOrderSize   orderbook.Uint
	MaxPrice       orderbook.Uint
	MaxNetPosition orderbook.Uint

	mu       sync.Mutex
	position map[string]signedQuantity
}

type signedQuantity struct {
	magnitude orderbook.Uint
	short     bool
}

// New creates a Gate with the given ceilings. A zero MaxNetPosition
// disables the position check entirely (only size/price are enforced).
func New(maxOrderSize, maxPrice, maxNetPosition orderbook.Uint) *Gate {
	return &Gate{
		MaxOrderSize:   maxOrderSize,
		MaxPrice:       maxPrice,
		MaxNetPosition: maxNetPosition,
		position:       make(map[string]signedQuantity),
	}
}

// Validate implements orderbook.RiskGate.
func (g *Gate) Validate(order *orderbook.Order, _ orderbook.BookView) error {
	if order.OriginalQuantity().GreaterThan(g.MaxOrderSize) {
		return fmt.Errorf("order quantity %s exceeds max order size %s",
			order.OriginalQuantity().String(), g.MaxOrderSize.String())
	}
	if order.Kind() == orderbook.Limit && order.LimitPrice().GreaterThan(g.MaxPrice) {
		return fmt.Errorf("limit price %s exceeds max price %s",
			order.LimitPrice().String(), g.MaxPrice.String())
	}
	if g.MaxNetPosition.IsZero() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	projected := g.project(order)
	if projected.magnitude.GreaterThan(g.MaxNetPosition) {
		return fmt.Errorf("account %s projected net position %s exceeds limit %s",
			order.Account(), projected.magnitude.String(), g.MaxNetPosition.String())
	}
	g.position[order.Account()] = projected
	return nil
}

// project computes the account's net position as if order were fully
// filled, without mutating stored state.
func (g *Gate) project(order *orderbook.Order) signedQuantity {
	current := g.position[order.Account()]
	delta := order.OriginalQuantity()

	// Treat buy as long-increasing, sell as short-increasing, folding
	// onto the same signed scalar used for the stored position.
	currentSignedLong := !current.short
	deltaIsBuy := order.Side() == orderbook.Buy

	if current.magnitude.IsZero() || currentSignedLong == deltaIsBuy {
		return signedQuantity{magnitude: current.magnitude.Add(delta), short: !deltaIsBuy}
	}
	if delta.GreaterThan(current.magnitude) {
		return signedQuantity{magnitude: delta.Sub(current.magnitude), short: !deltaIsBuy}
	}
	return signedQuantity{magnitude: current.magnitude.Sub(delta), short: current.short}
}

var _ orderbook.RiskGate = (*Gate)(nil)
