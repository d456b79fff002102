package orderbook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceLevelEnqueueAggregatesQuantity(t *testing.T) {
	level := NewPriceLevel(NewUint(100))
	o1 := NewOrder(1, Buy, Limit, GTC, NewUint(100), NewUint(5), "X", "a")
	o2 := NewOrder(2, Buy, Limit, GTC, NewUint(100), NewUint(7), "X", "a")

	level.Enqueue(o1)
	level.Enqueue(o2)

	require.True(t, level.AggregateQuantity().Equals(NewUint(12)))
	require.Equal(t, 2, level.OrderCount())
	require.Equal(t, o1, level.PeekHead())
}

func TestPriceLevelFillThenDequeue(t *testing.T) {
	level := NewPriceLevel(NewUint(100))
	o := NewOrder(1, Sell, Limit, GTC, NewUint(100), NewUint(10), "X", "a")
	level.Enqueue(o)

	level.Fill(o, NewUint(4))
	require.True(t, level.AggregateQuantity().Equals(NewUint(6)))
	require.False(t, o.IsFilled())

	level.Fill(o, NewUint(6))
	require.True(t, o.IsFilled())
	require.True(t, level.AggregateQuantity().IsZero())

	level.Dequeue(o)
	require.True(t, level.Empty())
	require.Nil(t, o.queueElem)
}

func TestPriceLevelIterateOrderPreservesFIFO(t *testing.T) {
	level := NewPriceLevel(NewUint(100))
	o1 := NewOrder(1, Buy, Limit, GTC, NewUint(100), NewUint(1), "X", "a")
	o2 := NewOrder(2, Buy, Limit, GTC, NewUint(100), NewUint(1), "X", "a")
	o3 := NewOrder(3, Buy, Limit, GTC, NewUint(100), NewUint(1), "X", "a")
	level.Enqueue(o1)
	level.Enqueue(o2)
	level.Enqueue(o3)

	var seen []uint64
	level.Iterate(func(o *Order) bool {
		seen = append(seen, o.ID())
		return false
	})
	require.Equal(t, []uint64{1, 2, 3}, seen)
}
