package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driving"
	"github.com/custodia-labs/regcheck-cli/internal/logger"
)

// Ensure Review implements the interface.
var _ driving.ReviewService = (*Review)(nil)

// DefaultConcurrency bounds the per-document worker pool.
const DefaultConcurrency = 4

// Review orchestrates a full compliance review run: parallel per-document
// classification and scanning, single-threaded checklist evaluation, then
// report compilation and annotation once every document task has finished.
type Review struct {
	classifier  *Classifier
	scanner     *Scanner
	checklist   *ChecklistEngine
	annotator   *Annotator
	compiler    *Compiler
	store       driven.ReportStore
	concurrency int
}

// NewReview wires the review orchestrator. store may be nil to skip report
// persistence. concurrency <= 0 uses DefaultConcurrency.
func NewReview(
	classifier *Classifier,
	scanner *Scanner,
	checklist *ChecklistEngine,
	annotator *Annotator,
	compiler *Compiler,
	store driven.ReportStore,
	concurrency int,
) *Review {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Review{
		classifier:  classifier,
		scanner:     scanner,
		checklist:   checklist,
		annotator:   annotator,
		compiler:    compiler,
		store:       store,
		concurrency: concurrency,
	}
}

// docOutcome carries one document's classification and findings between the
// parallel stage and aggregation.
type docOutcome struct {
	cls      domain.Classification
	findings []domain.Finding
}

// Run executes a review of docs against the checklist for transactionType.
//
// Configuration errors (unknown transaction type, cyclic requirements)
// abort before any document is processed. Per-document classification and
// scanning fan out over a bounded worker pool; a cancelled context stops
// dispatching new documents while letting in-flight ones finish. The report
// is compiled only after every document task completes; no partial report
// is ever returned or persisted.
func (s *Review) Run(ctx context.Context, docs []*domain.Document, transactionType string) (*driving.ReviewResult, error) {
	// Preflight: load the checklist so configuration errors surface as a
	// run-level failure with no partial report.
	if _, err := s.checklist.ref.Checklist(transactionType); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger.Section(fmt.Sprintf("review %s (%s, %d documents)", runID, transactionType, len(docs)))

	outcomes := make([]docOutcome, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, doc := range docs {
		// Stop issuing new tasks once the run is cancelled.
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			outcomes[i] = s.reviewOne(gctx, doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	classifications := make([]domain.Classification, 0, len(docs))
	var findings []domain.Finding
	for _, out := range outcomes {
		classifications = append(classifications, out.cls)
		findings = append(findings, out.findings...)
	}

	results, err := s.checklist.Evaluate(classifications, transactionType)
	if err != nil {
		return nil, err
	}

	report, err := s.compiler.Compile(runID, transactionType, docs, classifications, results, findings)
	if err != nil {
		return nil, err
	}

	annotated := make([]domain.AnnotatedDocument, 0, len(docs))
	for i, doc := range docs {
		ann, err := s.annotator.Annotate(doc, outcomes[i].cls, findings, results, transactionType)
		if err != nil {
			return nil, err
		}
		annotated = append(annotated, ann)
	}

	if s.store != nil {
		if err := s.store.SaveReport(ctx, report); err != nil {
			return nil, fmt.Errorf("save report: %w", err)
		}
	}

	logger.Info("review %s complete: %s, score %.1f", runID, report.SummaryStatus, report.Score)
	return &driving.ReviewResult{Report: report, Annotated: annotated}, nil
}

// reviewOne classifies and scans a single document. Failures degrade: an
// empty or unclassifiable document yields an Unknown classification and no
// findings rather than an error.
func (s *Review) reviewOne(ctx context.Context, doc *domain.Document) docOutcome {
	cls, err := s.classifier.Classify(ctx, doc)
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyDocument) {
			logger.Warn("classify %s: %v", doc.ID, err)
		}
		return docOutcome{cls: domain.Classification{
			DocumentID: doc.ID,
			Label:      domain.DocTypeUnknown,
		}}
	}
	logger.Debug("classified %s as %s (%.2f)", doc.Filename, cls.Label, cls.Confidence)

	findings := s.scanner.Scan(ctx, doc, cls)
	logger.Debug("scanned %s: %d finding(s)", doc.Filename, len(findings))
	return docOutcome{cls: cls, findings: findings}
}

// incorporationIndicators are the document types whose presence suggests a
// company incorporation filing.
var incorporationIndicators = map[domain.DocType]struct{}{
	domain.DocTypeArticlesOfAssociation:         {},
	domain.DocTypeMemorandumOfAssociation:       {},
	domain.DocTypeIncorporationApplication:      {},
	domain.DocTypeUBODeclaration:                {},
	domain.DocTypeRegisterOfMembers:             {},
	domain.DocTypeRegisterOfDirectors:           {},
	domain.DocTypeRegisterOfMembersAndDirectors: {},
}

// InferTransactionType guesses the transaction type from the classified
// document mix. Three or more distinct incorporation indicators suggest an
// incorporation; a licensing filing or employment contract suggests those
// processes. Returns an empty type when nothing matches.
func (s *Review) InferTransactionType(ctx context.Context, docs []*domain.Document) (string, float64, error) {
	seen := make(map[domain.DocType]struct{})
	for _, doc := range docs {
		cls, err := s.classifier.Classify(ctx, doc)
		if err != nil {
			continue
		}
		seen[cls.Label] = struct{}{}
	}

	indicators := 0
	for t := range seen {
		if _, ok := incorporationIndicators[t]; ok {
			indicators++
		}
	}
	if indicators >= 3 {
		return "incorporation", 0.9, nil
	}
	if _, ok := seen[domain.DocTypeLicensingFiling]; ok {
		return "licensing", 0.8, nil
	}
	if _, ok := seen[domain.DocTypeEmploymentContract]; ok {
		return "employment", 0.8, nil
	}
	return "", 0, nil
}
