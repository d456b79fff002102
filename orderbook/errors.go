package orderbook

import (
	stderrors "errors"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var (
	ErrZeroQuantity          = stderrors.New("orderbook: order quantity must be greater than zero")
	ErrInvalidPrice          = stderrors.New("orderbook: limit order requires a positive price")
	ErrDuplicateOrderID      = stderrors.New("orderbook: order id already present on the book")
	ErrOrderNotFound         = stderrors.New("orderbook: order id not found")
	ErrInsufficientLiquidity = stderrors.New("orderbook: fill-or-kill could not be satisfied immediately")
	ErrQuantityBelowFilled   = stderrors.New("orderbook: modified quantity is below quantity already filled")
)

// RiskRejected wraps the reason a RiskGate refused to admit an order. The
// reason string comes from the gate implementation, not from the book.
func RiskRejected(reason string) error {
	return errors.WithDetail(stderrors.New("orderbook: order rejected by risk gate"), reason)
}

// invariantViolation logs msg at ERROR on logger, then panics; reaching
// this point means the book's internal bookkeeping itself is
// inconsistent, not that caller input was bad.
func invariantViolation(logger *zap.Logger, msg string) {
	logger.Error("orderbook: invariant violation", zap.String("detail", msg))
	panic("orderbook: invariant violation: " + msg)
}
