package commands

import (
	"context"
	"errors"

	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/core/domain/services"
	"insurance/internal/core/ports"
)

var (
	// ErrNationalIDAlreadyRegistered is returned when a holder with the same
	// national ID already exists, regardless of that holder's status.
	ErrNationalIDAlreadyRegistered = errors.New("national ID is already registered")

	// ErrHolderMustBeAdult is returned when the birth date puts the applicant
	// under the minimum age.
	ErrHolderMustBeAdult = errors.New("policyholder must be an adult")
)

// CreatePolicyHolderCommandHandler registers new policyholder aggregates.
// Rejects duplicate national IDs and underage applicants before touching the
// aggregate.
type CreatePolicyHolderCommandHandler struct {
	holders   ports.PolicyHolderRepository
	publisher ports.EventPublisher
	service   services.PolicyHolderService
}

// NewCreatePolicyHolderCommandHandler creates a handler for holder registration.
func NewCreatePolicyHolderCommandHandler(
	holders ports.PolicyHolderRepository,
	publisher ports.EventPublisher,
	service services.PolicyHolderService,
) CreatePolicyHolderCommandHandler {
	return CreatePolicyHolderCommandHandler{
		holders:   holders,
		publisher: publisher,
		service:   service,
	}
}

// Handle processes the registration command.
//
// The new aggregate starts Active at version 0 with no policies. Events are
// published only after a successful save; a failed save publishes nothing.
func (h *CreatePolicyHolderCommandHandler) Handle(ctx context.Context, cmd CreatePolicyHolderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.service.IsAdult(cmd.PersonalInfo().BirthDate()) {
		return ErrHolderMustBeAdult
	}

	exists, err := h.holders.ExistsByNationalID(ctx, cmd.NationalID())
	if err != nil {
		return err
	}
	if exists {
		return ErrNationalIDAlreadyRegistered
	}

	holder, err := policyholder.NewPolicyHolder(
		cmd.HolderID(), cmd.NationalID(), cmd.PersonalInfo(), cmd.ContactInfo(), cmd.Address())
	if err != nil {
		return err
	}

	if err = h.holders.Save(ctx, holder); err != nil {
		return err
	}

	return h.publisher.PublishAll(ctx, holder.DrainEvents())
}
