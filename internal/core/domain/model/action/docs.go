// Package action provides domain entities and business logic for the discrete
// tasks performed within a case's lifecycle.
//
// The package includes:
//   - Action: The aggregate root for a single task within a case
//   - Status: A state machine that enforces valid action status transitions
//
// Key business rules:
//   - Actions must have valid identifiers (action, organization, case) and a title
//   - Action status follows the workflow PLANNED -> IN_PROGRESS -> COMPLETED
//   - Blocked actions return to IN_PROGRESS before completing
//   - COMPLETED and CANCELLED are terminal; no outgoing transitions exist
package action
