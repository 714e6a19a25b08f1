package commands

import (
	"context"
	"errors"

	"insurance/internal/core/domain/services"
	"insurance/internal/core/ports"
	"insurance/internal/pkg/errs"
)

// UpdateAddressCommandHandler replaces a holder's address. Lost concurrency
// races reload and re-run the command, bounded by maxSaveAttempts.
type UpdateAddressCommandHandler struct {
	holders   ports.PolicyHolderRepository
	publisher ports.EventPublisher
	service   services.PolicyHolderService
}

// NewUpdateAddressCommandHandler creates a handler for address updates.
func NewUpdateAddressCommandHandler(
	holders ports.PolicyHolderRepository,
	publisher ports.EventPublisher,
	service services.PolicyHolderService,
) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		holders:   holders,
		publisher: publisher,
		service:   service,
	}
}

// Handle processes the address update command.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		holder, err := h.holders.Get(ctx, cmd.HolderID())
		if err != nil {
			return err
		}

		if !h.service.CanUpdate(holder.Status()) {
			return errs.NewInvalidStateError("update address", holder.Status().String())
		}

		if err = holder.UpdateAddress(cmd.Address()); err != nil {
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
