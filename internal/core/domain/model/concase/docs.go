// Package concase provides domain entities and business logic for concierge
// case management. It implements the Case aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Case: The aggregate root that manages case identity, properties, and lifecycle
//   - Status: A state machine that enforces valid case status transitions
//   - HistoryEntry: An append-only record of every status transition
//
// Key business rules:
//   - Cases must have a valid unique identifier, organization, portfolio, and title
//   - Case status follows the lifecycle from INTAKE through RESOLVED to CLOSED
//   - CLOSED and CANCELLED are terminal; no outgoing transitions exist
//   - RESOLVED cases may be reopened back to IN_PROGRESS
//   - Every transition, including creation, produces a history entry
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package concase
