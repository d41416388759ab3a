// Package advisor turns a free-text taste preference into a ranked,
// country-grouped coffee recommendation over the loaded catalog.
package advisor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/beanlog/cuppa/internal/catalog"
	"github.com/beanlog/cuppa/internal/palate"
	"github.com/beanlog/cuppa/pkg/models"
)

// DefaultTimeout bounds one recommendation pass.
const DefaultTimeout = 15 * time.Second

// Engine is the recommendation pipeline. It keeps no state between
// calls; concurrent use over the same store is safe because snapshots
// are immutable.
type Engine struct {
	store      *catalog.Store
	classifier *palate.Classifier
	logger     *zap.Logger
	timeout    time.Duration
}

// NewEngine creates an engine over a catalog store. A non-positive
// timeout falls back to DefaultTimeout.
func NewEngine(store *catalog.Store, classifier *palate.Classifier, logger *zap.Logger, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Engine{
		store:      store,
		classifier: classifier,
		logger:     logger,
		timeout:    timeout,
	}
}

// Timeout returns the per-request bound.
func (e *Engine) Timeout() time.Duration { return e.timeout }

// Advise runs one bounded recommendation pass. Every failure mode maps
// to an outcome rather than an error: classification misses and empty
// filter results are expected, frequent responses. When the deadline
// passes the in-flight pass is abandoned and the timeout outcome is
// returned, never a partial result.
func (e *Engine) Advise(ctx context.Context, preference string) *models.Outcome {
	start := time.Now()
	log := e.logger.With(zap.String("request_id", uuid.NewString()))

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	done := make(chan *models.Outcome, 1)
	go func() {
		done <- e.run(ctx, log, preference)
	}()

	var out *models.Outcome
	select {
	case out = <-done:
	case <-ctx.Done():
		out = TimeoutOutcome()
	}

	advisorDuration.Observe(time.Since(start).Seconds())
	advisorRequestsTotal.WithLabelValues(outcomeLabel(out)).Inc()
	log.Info("advice served",
		zap.String("outcome", outcomeLabel(out)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out
}

// run is the pipeline proper: meta-question short-circuit, catalog
// availability, classification, filtering, country selection. The
// stages run in that fixed order; ctx is checked between the scans so
// an abandoned request stops early.
func (e *Engine) run(ctx context.Context, log *zap.Logger, preference string) *models.Outcome {
	if e.classifier.IsMetaQuestion(preference) {
		return infoOutcome(palate.CriteriaText)
	}

	snap, err := e.store.Snapshot()
	if err != nil {
		return unavailableOutcome()
	}

	profile, ok := e.classifier.Classify(preference)
	if !ok {
		return guidanceOutcome()
	}
	log.Debug("preference classified",
		zap.String("kind", string(profile.Kind)),
		zap.Int("records", len(snap.Records)),
	)
	if ctx.Err() != nil {
		return TimeoutOutcome()
	}

	filtered := filterRecords(snap.Records, profile)
	if len(filtered) == 0 {
		return noMatchOutcome()
	}
	if ctx.Err() != nil {
		return TimeoutOutcome()
	}

	countries := selectCountries(filtered, profile)
	groups := make([]models.CountryGroup, 0, len(countries))
	for _, country := range countries {
		groups = append(groups, models.CountryGroup{
			Country: country,
			Coffees: topCoffees(filtered, country),
		})
	}

	return recommendationOutcome(&models.Recommendation{
		FlavorDescription: profile.FlavorDescription,
		Countries:         groups,
	})
}

// outcomeLabel is the metrics label for an outcome.
func outcomeLabel(out *models.Outcome) string {
	if out.Code != "" {
		return out.Code
	}
	return string(out.Type)
}
