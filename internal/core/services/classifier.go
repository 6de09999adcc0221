package services

import (
	"context"
	"sort"
	"time"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regcheck-cli/internal/logger"
)

// Classification defaults. Overridable via ClassifierOptions.
const (
	// DefaultConfidenceFloor is the minimum winning score; below it the
	// document is classified Unknown.
	DefaultConfidenceFloor = 0.35

	// DefaultTieEpsilon is the score gap within which two candidates are
	// considered tied and the taxonomy priority order decides.
	DefaultTieEpsilon = 0.05

	// DefaultScoreTimeout bounds a single backend scoring call.
	DefaultScoreTimeout = 30 * time.Second

	// maxAlternatives caps the recorded runner-up labels.
	maxAlternatives = 3
)

// ClassifierOptions tune classification behaviour.
type ClassifierOptions struct {
	// ConfidenceFloor is the minimum winning score. Zero means default.
	ConfidenceFloor float64

	// TieEpsilon is the tie-break window. Zero means default.
	TieEpsilon float64

	// ScoreTimeout bounds each backend call. Zero means default.
	ScoreTimeout time.Duration
}

// Classifier assigns each document a type label from the closed taxonomy.
// It is polymorphic over the TypeScorer capability: any backend that
// produces comparable, deterministic scores will do.
type Classifier struct {
	scorer  driven.TypeScorer
	floor   float64
	epsilon float64
	timeout time.Duration
}

// NewClassifier creates a classifier over the given scoring backend.
func NewClassifier(scorer driven.TypeScorer, opts ClassifierOptions) *Classifier {
	c := &Classifier{
		scorer:  scorer,
		floor:   opts.ConfidenceFloor,
		epsilon: opts.TieEpsilon,
		timeout: opts.ScoreTimeout,
	}
	if c.floor == 0 {
		c.floor = DefaultConfidenceFloor
	}
	if c.epsilon == 0 {
		c.epsilon = DefaultTieEpsilon
	}
	if c.timeout == 0 {
		c.timeout = DefaultScoreTimeout
	}
	return c
}

// Classify scores the document against every taxonomy candidate and picks
// the winner. Ties within the epsilon window resolve by taxonomy priority;
// the loser is recorded in AlternativeLabels. If no candidate clears the
// confidence floor, or the backend fails or times out, the document is
// classified Unknown; classification never fails on an unclassifiable
// document. The only error is ErrEmptyDocument for empty input.
func (c *Classifier) Classify(ctx context.Context, doc *domain.Document) (domain.Classification, error) {
	if doc == nil || doc.Empty() {
		return domain.Classification{}, domain.ErrEmptyDocument
	}
	if c.scorer == nil {
		return domain.Classification{}, domain.ErrScorerUnavailable
	}

	ranked, failed := c.scoreAll(ctx, doc)

	cls := domain.Classification{DocumentID: doc.ID, Label: domain.DocTypeUnknown}
	if len(ranked) == 0 {
		return cls, nil
	}

	winner := ranked[0]
	cls.Confidence = winner.Score
	for _, alt := range ranked[1:] {
		if len(cls.AlternativeLabels) == maxAlternatives {
			break
		}
		cls.AlternativeLabels = append(cls.AlternativeLabels, alt)
	}

	if failed || winner.Score < c.floor {
		// Degrade to Unknown, keeping the highest observed score as the
		// confidence so the caller can see how close the call was.
		return cls, nil
	}

	cls.Label = winner.Label
	return cls, nil
}

// scoreAll scores every candidate and returns them ranked best-first.
// Candidates tied within epsilon rank by taxonomy priority. The failed
// return is true when any backend call errored or timed out.
func (c *Classifier) scoreAll(ctx context.Context, doc *domain.Document) ([]domain.RankedLabel, bool) {
	var ranked []domain.RankedLabel
	failed := false

	for _, candidate := range domain.Taxonomy() {
		score, err := c.scoreOne(ctx, doc, candidate)
		if err != nil {
			logger.Warn("scoring %s as %s failed: %v", doc.ID, candidate, err)
			failed = true
			break
		}
		ranked = append(ranked, domain.RankedLabel{Label: candidate, Score: clamp01(score)})
	}

	epsilon := c.epsilon
	sort.SliceStable(ranked, func(i, j int) bool {
		if diff := ranked[i].Score - ranked[j].Score; diff > epsilon || diff < -epsilon {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Label.Priority() < ranked[j].Label.Priority()
	})
	return ranked, failed
}

// scoreOne runs a single backend call under the configured timeout.
func (c *Classifier) scoreOne(ctx context.Context, doc *domain.Document, candidate domain.DocType) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.scorer.Score(ctx, doc, candidate)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
