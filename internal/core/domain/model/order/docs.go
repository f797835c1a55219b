// Package order implements the work order aggregate and its status state machine.
//
// The package includes:
//   - Order: the aggregate root holding status, progress, reason, audit history and time-in-status totals
//   - Status: the eight lifecycle stages, with legacy value normalization for stored records
//   - TransitionTable: the immutable, injected description of labels, icons, ranks, legal targets,
//     reason requirements and auto-actions per status
//   - ValidateTransition: the pure legality check used before any mutation
//   - StatusChangeEvent: the append-only audit entry with frozen labels
//
// Key business rules:
//   - A transition to the current status is rejected
//   - Orders in a status missing from the table may move anywhere
//   - Paused and Cancelled require a free-text reason
//   - Completed has no outgoing transitions; Cancelled may only re-open into Planned
//   - Time spent in each status accumulates and never decreases, even if the clock regresses
package order
