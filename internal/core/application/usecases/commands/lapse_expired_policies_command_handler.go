package commands

import (
	"context"
	"errors"
	"time"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/core/ports"
	"insurance/internal/pkg/errs"
)

// LapseExpiredPoliciesCommandHandler sweeps holders owning Active policies
// past their end date and lapses them.
//
// Each holder is processed independently: a failure on one holder does not
// stop the sweep, and the accumulated errors are returned together at the
// end. Per holder, the lapse-save cycle retries on lost concurrency races
// like every other command.
type LapseExpiredPoliciesCommandHandler struct {
	holders   ports.PolicyHolderRepository
	publisher ports.EventPublisher
}

// NewLapseExpiredPoliciesCommandHandler creates a handler for the lapse sweep.
func NewLapseExpiredPoliciesCommandHandler(
	holders ports.PolicyHolderRepository,
	publisher ports.EventPublisher,
) LapseExpiredPoliciesCommandHandler {
	return LapseExpiredPoliciesCommandHandler{
		holders:   holders,
		publisher: publisher,
	}
}

// Handle processes the sweep command.
func (h *LapseExpiredPoliciesCommandHandler) Handle(ctx context.Context, cmd LapseExpiredPoliciesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	expired, err := h.holders.GetAllWithActivePoliciesEndingBefore(ctx, cmd.AsOf())
	if err != nil {
		return err
	}

	var sweepErrs []error
	for _, holder := range expired {
		if err := h.lapseHolderPolicies(ctx, holder.ID(), cmd.AsOf()); err != nil {
			sweepErrs = append(sweepErrs, err)
		}
	}

	return errors.Join(sweepErrs...)
}

// lapseHolderPolicies reloads one holder and lapses all of its expired Active
// policies in a single save.
func (h *LapseExpiredPoliciesCommandHandler) lapseHolderPolicies(
	ctx context.Context,
	holderID kernel.UUID,
	asOf time.Time,
) error {
	var lastErr error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		holder, err := h.holders.Get(ctx, holderID)
		if err != nil {
			return err
		}

		lapsed := false
		for _, policy := range holder.Policies() {
			if !isExpired(policy, asOf) {
				continue
			}
			if err = holder.LapsePolicy(policy.ID()); err != nil {
				return err
			}
			lapsed = true
		}

		// Another sweep may have already lapsed everything.
		if !lapsed {
			return nil
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

func isExpired(policy *policyholder.Policy, asOf time.Time) bool {
	return policy.Status() == policyholder.PolicyStatusActive && policy.EndDate().Before(asOf)
}
