package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/ports"
	"concierge/internal/pkg/errs"
)

// CaseCloseoutWorkflow is the durable workflow started when a case reaches a
// terminal status. It handles vendor settlement and owner notification
// outside the request path.
const CaseCloseoutWorkflow = "case-closeout"

// ChangeCaseStatusCommandHandler moves a case through its lifecycle. The
// aggregate enforces the transition table; the handler records the history
// entry and activity row in the same transaction, and for terminal targets
// starts the close-out workflow after the commit. The workflow engine
// deduplicates runs by the command's idempotency key, so a retried request
// never runs the close-out twice.
type ChangeCaseStatusCommandHandler struct {
	uowFactory CaseUoWFactory
	authorizer ports.PolicyAuthorizer
	workflows  ports.WorkflowRunner
}

// NewChangeCaseStatusCommandHandler creates a handler for case status
// transitions.
func NewChangeCaseStatusCommandHandler(
	uowFactory CaseUoWFactory,
	authorizer ports.PolicyAuthorizer,
	workflows ports.WorkflowRunner,
) ChangeCaseStatusCommandHandler {
	return ChangeCaseStatusCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		workflows:  workflows,
	}
}

// Handle processes the status transition command.
func (h *ChangeCaseStatusCommandHandler) Handle(ctx context.Context, cmd ChangeCaseStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "case.transition",
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

	caseRepo := uow.CaseRepository()
	aggregate, err := caseRepo.Get(ctx, cmd.OrgID(), cmd.CaseID())
	if err != nil {
		return err
	}

	fromStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.TargetStatus()); err != nil {
		return err
	}

	if err = caseRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	historyEntry, err := concase.NewTransitionHistoryEntry(
		aggregate.ID(), fromStatus, aggregate.Status(), cmd.ActorRef(), cmd.Note(),
	)
	if err != nil {
		return err
	}
	if err = caseRepo.AddHistoryEntry(ctx, historyEntry); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityCase, aggregate.ID(), "case.status_changed", cmd.ActorRef(),
		map[string]any{"from": fromStatus.String(), "to": aggregate.Status().String()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !aggregate.Status().IsTerminal() {
		return nil
	}

	// The transition is already durable at this point. A workflow start
	// failure surfaces to the caller, who retries with the same idempotency
	// key.
	_, err = h.workflows.Run(ctx, CaseCloseoutWorkflow, cmd.IdempotencyKey(), map[string]any{
		"case_id": aggregate.ID().String(),
		"org_id":  cmd.OrgID().String(),
		"status":  aggregate.Status().String(),
	})
	if err != nil {
		return errs.NewDependencyFailedErrorWithCause("workflow engine", err)
	}

	return nil
}
