package reconcile

import (
	"go.uber.org/zap"
)

// Reconciler applies an ordered list of strategies to a payload.
type Reconciler struct {
	strategies []Strategy
	logger     *zap.Logger
}

// New creates a Reconciler. Without explicit strategies it uses DefaultStrategies.
func New(logger *zap.Logger, strategies ...Strategy) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Reconciler{strategies: strategies, logger: logger}
}

// Reconcile returns the days produced by the first strategy that yields any.
// Lower-priority strategies are not consulted once one succeeds, so their
// entries never mix into a more authoritative result. Skipped entries are
// reported as warnings; an empty result is a warning, not an error.
func (r *Reconciler) Reconcile(p Payload) (ReadingDays, *Report) {
	report := &Report{}
	result := ReadingDays{}

	for _, s := range r.strategies {
		days := s.Extract(p, report)
		if len(days) > 0 {
			result = days
			report.Source = s.Name
			break
		}
		r.logger.Debug("Strategy produced no reading days", zap.String("strategy", s.Name))
	}

	report.Days = len(result)
	if report.Empty() {
		report.warn(EmptyResultWarning, "payload", "", nil)
	}

	for _, w := range report.Warnings {
		r.logger.Warn("Reconciliation warning",
			zap.String("kind", string(w.Kind)),
			zap.String("source", w.Source),
			zap.String("value", w.Value),
			zap.Error(w.Err),
		)
	}

	if !report.Empty() {
		keys := result.Keys()
		r.logger.Info("Reconciled reading days",
			zap.String("source", report.Source),
			zap.Int("days", report.Days),
			zap.String("first", keys[0]),
			zap.String("last", keys[len(keys)-1]),
		)
	}

	return result, report
}
