// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports) consumed by the core review services.
package driven
