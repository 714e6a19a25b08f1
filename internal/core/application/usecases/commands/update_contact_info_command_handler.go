package commands

import (
	"context"
	"errors"

	"insurance/internal/core/domain/services"
	"insurance/internal/core/ports"
	"insurance/internal/pkg/errs"
)

// UpdateContactInfoCommandHandler replaces a holder's contact information.
// Lost concurrency races reload and re-run the command, bounded by
// maxSaveAttempts.
type UpdateContactInfoCommandHandler struct {
	holders   ports.PolicyHolderRepository
	publisher ports.EventPublisher
	service   services.PolicyHolderService
}

// NewUpdateContactInfoCommandHandler creates a handler for contact-info updates.
func NewUpdateContactInfoCommandHandler(
	holders ports.PolicyHolderRepository,
	publisher ports.EventPublisher,
	service services.PolicyHolderService,
) UpdateContactInfoCommandHandler {
	return UpdateContactInfoCommandHandler{
		holders:   holders,
		publisher: publisher,
		service:   service,
	}
}

// Handle processes the contact-info update command.
func (h *UpdateContactInfoCommandHandler) Handle(ctx context.Context, cmd UpdateContactInfoCommand) error {
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
			return errs.NewInvalidStateError("update contact info", holder.Status().String())
		}

		if err = holder.UpdateContactInfo(cmd.ContactInfo()); err != nil {
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
