// Package domain contains the core business entities for compliance review.
// All entities are created within a single review run and are immutable after
// creation; a rerun on updated inputs produces a new entity set under a new
// run ID rather than patching a prior one.
package domain
