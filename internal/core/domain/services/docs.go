// Package services provides domain services that coordinate the order aggregate
// with collaborators it must not depend on directly.
//
// The package includes:
//   - AutoActionDispatcher: fires the advisory side effect bound to the status an
//     order has just entered (material check, time tracking nudge, customer
//     outreach nudge, invoice readiness)
//
// Auto-actions are best-effort. They run after the transition is committed,
// never fail it and never roll it back.
package services
