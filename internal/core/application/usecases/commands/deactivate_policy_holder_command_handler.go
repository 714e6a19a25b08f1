package commands

import (
	"context"
	"errors"

	"insurance/internal/core/domain/services"
	"insurance/internal/core/ports"
	"insurance/internal/pkg/errs"
)

// DeactivatePolicyHolderCommandHandler soft-deletes holders. Deactivating an
// already deactivated holder fails and changes nothing. Lost concurrency
// races reload and re-run the command, bounded by maxSaveAttempts.
type DeactivatePolicyHolderCommandHandler struct {
	holders   ports.PolicyHolderRepository
	publisher ports.EventPublisher
	service   services.PolicyHolderService
}

// NewDeactivatePolicyHolderCommandHandler creates a handler for deactivation.
func NewDeactivatePolicyHolderCommandHandler(
	holders ports.PolicyHolderRepository,
	publisher ports.EventPublisher,
	service services.PolicyHolderService,
) DeactivatePolicyHolderCommandHandler {
	return DeactivatePolicyHolderCommandHandler{
		holders:   holders,
		publisher: publisher,
		service:   service,
	}
}

// Handle processes the deactivation command.
func (h *DeactivatePolicyHolderCommandHandler) Handle(ctx context.Context, cmd DeactivatePolicyHolderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		holder, err := h.holders.Get(ctx, cmd.HolderID())
		if err != nil {
			return err
		}

		if !h.service.CanDeactivate(holder.Status()) {
			return errs.NewInvalidStateError("deactivate", holder.Status().String())
		}

		if err = holder.Deactivate(); err != nil {
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
