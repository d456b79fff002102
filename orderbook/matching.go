package orderbook

// crosses reports whether a resting price on the opposite side is
// marketable against taker's limit.
func crosses(taker *Order, makerPrice Uint) bool {
	if taker.isBuy() {
		return taker.limitPrice.GreaterThanOrEqual(makerPrice)
	}
	return taker.limitPrice.LessThanOrEqual(makerPrice)
}

// canFillCompletely walks the opposite ladder without mutating anything,
// summing matchable liquidity until it either covers taker's remaining
// quantity or runs out of marketable levels. It is the fill-or-kill
// pre-check: FOK must know the answer before a single unit is matched,
// since a partial match that then gets unwound is not an option.
func (b *Book) canFillCompletely(taker *Order) bool {
	opposite := b.ladderFor(taker.side.Opposite())
	need := taker.Remaining()
	have := NewZeroUint()
	opposite.IterateFromBest(func(level *PriceLevel) bool {
		if taker.kind == Limit && !crosses(taker, level.Price()) {
			return true
		}
		have = have.Add(level.AggregateQuantity())
		return have.GreaterThanOrEqual(need)
	})
	return have.GreaterThanOrEqual(need)
}

// matchTaker runs the core matching loop: while taker still wants
// quantity and the opposite ladder has a marketable level, it drains
// that level's queue head-first, emitting a Trade per fill and a
// BookUpdate per maker whose resting state changed. Execution price is
// always the maker's resting price, never the taker's.
func (b *Book) matchTaker(taker *Order, ts uint64) {
	defer b.metrics.Timer()()
	opposite := b.ladderFor(taker.side.Opposite())
	for !taker.IsFilled() {
		node := opposite.Best()
		if node == nil {
			return
		}
		price := node.Key()
		if taker.kind == Limit && !crosses(taker, price) {
			return
		}
		level := node.Value()
		for !level.Empty() && !taker.IsFilled() {
			maker := level.PeekHead()
			tradeQty := Min(taker.Remaining(), maker.Remaining())

			level.Fill(maker, tradeQty)
			taker.filledQty = taker.filledQty.Add(tradeQty)
			b.metrics.ObserveTrade()

			buyID, sellID := taker.id, maker.id
			if taker.side == Sell {
				buyID, sellID = maker.id, taker.id
			}
			b.publisher.PublishTrade(Trade{
				TradeID:          b.nextTradeID(),
				Seq:              b.nextSeq(),
				Symbol:           b.symbol,
				Price:            price,
				Quantity:         tradeQty,
				BuyOrderID:       buyID,
				SellOrderID:      sellID,
				AggressorSide:    taker.side,
				TimestampLogical: ts,
			})

			if maker.IsFilled() {
				level.Dequeue(maker)
				b.index.remove(maker.id)
				if level.Empty() {
					b.emitBookUpdate(maker, Removed, nil)
				} else {
					b.emitBookUpdate(maker, Removed, level)
				}
			} else {
				b.emitBookUpdate(maker, Modified, level)
			}
		}
		if level.Empty() {
			opposite.RemoveIfEmpty(price)
		}
	}
}
