package orderbook

import "go.uber.org/zap"

// Metrics receives optional instrumentation callbacks from the book. The
// default is a no-op implementation that costs nothing; implementations
// typically wrap a prometheus collector (see internal/bookstat).
type Metrics interface {
	ObserveSubmit(accepted bool)
	ObserveTrade()
	ObserveCancel()
	ObserveModify()

	// Timer starts a matching-loop latency measurement and returns a
	// func to call once the loop has finished.
	Timer() func()
}

type noopMetrics struct{}

func (noopMetrics) ObserveSubmit(bool) {}
func (noopMetrics) ObserveTrade()      {}
func (noopMetrics) ObserveCancel()     {}
func (noopMetrics) ObserveModify()     {}
func (noopMetrics) Timer() func()      { return func() {} }

// Option configures a Book at construction time.
type Option func(*Book)

// WithLogger attaches a zap logger. The default is zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(b *Book) {
		if logger == nil {
			logger = zap.NewNop()
		}
		b.logger = logger
	}
}

// WithPublisher attaches the event sink. The default is NopPublisher.
func WithPublisher(p Publisher) Option {
	return func(b *Book) { b.publisher = p }
}

// WithRiskGate attaches the pre-admission risk check. The default is
// NopRiskGate.
func WithRiskGate(g RiskGate) Option {
	return func(b *Book) { b.riskGate = g }
}

// WithMetrics attaches an optional instrumentation sink.
func WithMetrics(m Metrics) Option {
	return func(b *Book) { b.metrics = m }
}
