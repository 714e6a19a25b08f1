package commands

import (
	"context"
	"errors"

	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/core/domain/services"
	"insurance/internal/core/ports"
	"insurance/internal/pkg/errs"
)

// AddPolicyCommandHandler writes new policies for existing holders.
//
// The domain-service gates run before the aggregate is touched; the
// aggregate's own status check remains the final authority. Lost
// optimistic-concurrency races reload the holder and re-run the whole
// command against fresh state, up to maxSaveAttempts times.
type AddPolicyCommandHandler struct {
	holders   ports.PolicyHolderRepository
	publisher ports.EventPublisher
	service   services.PolicyHolderService
}

// NewAddPolicyCommandHandler creates a handler for policy additions.
func NewAddPolicyCommandHandler(
	holders ports.PolicyHolderRepository,
	publisher ports.EventPublisher,
	service services.PolicyHolderService,
) AddPolicyCommandHandler {
	return AddPolicyCommandHandler{
		holders:   holders,
		publisher: publisher,
		service:   service,
	}
}

// Handle processes the add-policy command.
func (h *AddPolicyCommandHandler) Handle(ctx context.Context, cmd AddPolicyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.service.IsValidPolicyPeriod(cmd.StartDate(), cmd.EndDate()) {
		return errs.NewValueIsInvalidError("policy period")
	}
	if !h.service.IsValidPremiumAmount(cmd.Premium()) {
		return errs.NewValueIsInvalidError("premium")
	}
	if !h.service.IsValidSumInsured(cmd.SumInsured()) {
		return errs.NewValueIsInvalidError("sumInsured")
	}

	var lastErr error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		holder, err := h.holders.Get(ctx, cmd.HolderID())
		if err != nil {
			return err
		}

		if !h.service.CanAddPolicy(holder.Status()) {
			return errs.NewInvalidStateError("add policy", holder.Status().String())
		}

		policy, err := policyholder.NewPolicy(
			cmd.PolicyID(), cmd.PolicyType(), cmd.Premium(), cmd.SumInsured(),
			cmd.StartDate(), cmd.EndDate())
		if err != nil {
			return err
		}

		if err = holder.AddPolicy(policy); err != nil {
			return err
		}

		if err = h.holders.Save(ctx, holder); err != nil {
			if errors.Is(err, errs.ErrConcurrencyConflict) {
				lastErr = err
				continue
			}
			return err
		}

		return h.publisher.PublishAll(ctx, holder.DrainEvents())
	}

	return lastErr
}
