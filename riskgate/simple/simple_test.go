package simple

import (
	"testing"

	"github.com/lobcore/engine/orderbook"
	"github.com/stretchr/testify/require"
)

func TestGateRejectsOversizeOrder(t *testing.T) {
	g := New(orderbook.NewUint(100), orderbook.NewUint(100000), orderbook.NewZeroUint())
	o := orderbook.NewOrder(1, orderbook.Buy, orderbook.Limit, orderbook.GTC,
		orderbook.NewUint(10), orderbook.NewUint(101), "XYZ", "acct-1")

	err := g.Validate(o, nil)
	require.Error(t, err)
}

func TestGateRejectsOverLimitPrice(t *testing.T) {
	g := New(orderbook.NewUint(1000), orderbook.NewUint(50), orderbook.NewZeroUint())
	o := orderbook.NewOrder(1, orderbook.Buy, orderbook.Limit, orderbook.GTC,
		orderbook.NewUint(51), orderbook.NewUint(10), "XYZ", "acct-1")

	err := g.Validate(o, nil)
	require.Error(t, err)
}

func TestGateAcceptsWithinLimits(t *testing.T) {
	g := New(orderbook.NewUint(1000), orderbook.NewUint(1000), orderbook.NewZeroUint())
	o := orderbook.NewOrder(1, orderbook.Buy, orderbook.Limit, orderbook.GTC,
		orderbook.NewUint(10), orderbook.NewUint(10), "XYZ", "acct-1")

	require.NoError(t, g.Validate(o, nil))
}

func TestGateRejectsNetPositionBeyondLimit(t *testing.T) {
	g := New(orderbook.NewUint(1000), orderbook.NewUint(1000), orderbook.NewUint(15))

	buy := orderbook.NewOrder(1, orderbook.Buy, orderbook.Limit, orderbook.GTC,
		orderbook.NewUint(10), orderbook.NewUint(10), "XYZ", "acct-1")
	require.NoError(t, g.Validate(buy, nil))

	buyMore := orderbook.NewOrder(2, orderbook.Buy, orderbook.Limit, orderbook.GTC,
		orderbook.NewUint(10), orderbook.NewUint(10), "XYZ", "acct-1")
	require.Error(t, g.Validate(buyMore, nil))
}

func TestGateOffsettingSellReducesNetPosition(t *testing.T) {
	g := New(orderbook.NewUint(1000), orderbook.NewUint(1000), orderbook.NewUint(15))

	buy := orderbook.NewOrder(1, orderbook.Buy, orderbook.Limit, orderbook.GTC,
		orderbook.NewUint(10), orderbook.NewUint(10), "XYZ", "acct-1")
	require.NoError(t, g.Validate(buy, nil))

	sell := orderbook.NewOrder(2, orderbook.Sell, orderbook.Limit, orderbook.GTC,
		orderbook.NewUint(10), orderbook.NewUint(8), "XYZ", "acct-1")
	require.NoError(t, g.Validate(sell, nil))
}
