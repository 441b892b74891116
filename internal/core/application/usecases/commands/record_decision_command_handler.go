package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/domain/model/decision"
	"concierge/internal/core/ports"
)

// RecordDecisionCommandHandler records an immutable decision on a case.
// The owning case is loaded in the same transaction; recording a decision
// on a case from another organization reads as not-found.
type RecordDecisionCommandHandler struct {
	uowFactory DecisionUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewRecordDecisionCommandHandler creates a handler for decision recording.
func NewRecordDecisionCommandHandler(uowFactory DecisionUoWFactory, authorizer ports.PolicyAuthorizer) RecordDecisionCommandHandler {
	return RecordDecisionCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the decision recording command.
func (h *RecordDecisionCommandHandler) Handle(ctx context.Context, cmd RecordDecisionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "decision.record",
		Resource: "case/" + cmd.CaseID().String(),
		OrgID:    cmd.OrgID().String(),
	}); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SetTenant(ctx, cmd.OrgID()); err != nil {
		return err
	}

	owner, err := uow.CaseRepository().Get(ctx, cmd.OrgID(), cmd.CaseID())
	if err != nil {
		return err
	}

	record, err := decision.NewDecision(
		cmd.DecisionID(),
		cmd.OrgID(),
		owner.ID(),
		cmd.Outcome(),
		cmd.Rationale(),
		cmd.ActorRef(),
	)
	if err != nil {
		return err
	}

	if err = uow.DecisionRepository().Add(ctx, record); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityDecision, record.ID(), "decision.recorded", cmd.ActorRef(),
		map[string]any{"case_id": owner.ID().String(), "outcome": record.Outcome().String()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
