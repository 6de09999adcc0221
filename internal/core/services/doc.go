// Package services contains the core compliance review engine: document
// classification, checklist evaluation, red-flag scanning, annotation and
// report compilation, plus the orchestrator that runs a full review.
package services
