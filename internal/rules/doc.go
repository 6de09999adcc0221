// Package rules contains the red-flag rule implementations: independent
// content-level compliance checks applied to classified documents.
// Each rule is stateless and safe to run concurrently across documents.
package rules
