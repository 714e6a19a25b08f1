package commands_test

import (
	"errors"
	"testing"
	"time"

	"insurance/internal/core/application/usecases/commands"
	"insurance/internal/core/domain/model/event"
	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expiredPolicy(t *testing.T, endDate time.Time) *policyholder.Policy {
	t.Helper()
	p, err := policyholder.RestorePolicy(kernel.NewUUID(), policyholder.PolicyTypeTravel,
		validMoney(t, 300), validMoney(t, 50_000),
		endDate.AddDate(-1, 0, 0), endDate, policyholder.PolicyStatusActive, 0)
	require.NoError(t, err)
	return p
}

func holderWithPolicies(t *testing.T, policies ...*policyholder.Policy) *policyholder.PolicyHolder {
	t.Helper()
	holder, err := policyholder.RestorePolicyHolder(kernel.NewUUID(), validNationalID(t),
		validPersonalInfo(t), validContactInfo(t), validAddress(t),
		policyholder.HolderStatusActive, 1, policies)
	require.NoError(t, err)
	return holder
}

func TestNewLapseExpiredPoliciesCommand(t *testing.T) {
	t.Run("should reject zero reference date", func(t *testing.T) {
		_, err := commands.NewLapseExpiredPoliciesCommand(time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.LapseExpiredPoliciesCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrLapseExpiredPoliciesCommandIsNotConstructed)
	})
}

func TestLapseExpiredPoliciesCommandHandler_Handle_LapsesOnlyExpired(t *testing.T) {
	ctx := t.Context()
	asOf := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	expired := expiredPolicy(t, asOf.AddDate(0, -1, 0))
	current := expiredPolicy(t, asOf.AddDate(1, 0, 0)) // still running
	holder := holderWithPolicies(t, expired, current)
	cmd, err := commands.NewLapseExpiredPoliciesCommand(asOf)
	require.NoError(t, err)

	repo := new(MockPolicyHolderRepository)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		repo.On("GetAllWithActivePoliciesEndingBefore", ctx, asOf).
			Return([]*policyholder.PolicyHolder{holder}, nil).Once(),
		repo.On("Get", ctx, holder.ID()).Return(holder, nil).Once(),
		repo.On("Save", ctx, holder).Return(nil).Once(),
		publisher.On("PublishAll", ctx, mock.MatchedBy(func(events []event.DomainEvent) bool {
			return len(events) == 1 && events[0].EventType() == event.TypePolicyLapsed
		})).Return(nil).Once(),
	)

	h := commands.NewLapseExpiredPoliciesCommandHandler(repo, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, policyholder.PolicyStatusLapsed, holder.Policies()[0].Status())
	assert.Equal(t, policyholder.PolicyStatusActive, holder.Policies()[1].Status())
	assert.Equal(t, 2, holder.Version())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestLapseExpiredPoliciesCommandHandler_Handle_NothingToLapse(t *testing.T) {
	ctx := t.Context()
	asOf := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewLapseExpiredPoliciesCommand(asOf)
	require.NoError(t, err)

	// The sweep list was computed before another worker lapsed everything.
	alreadyLapsed, err := policyholder.RestorePolicy(kernel.NewUUID(), policyholder.PolicyTypeLife,
		validMoney(t, 100), validMoney(t, 10_000),
		asOf.AddDate(-2, 0, 0), asOf.AddDate(-1, 0, 0), policyholder.PolicyStatusLapsed, 1)
	require.NoError(t, err)
	holder := holderWithPolicies(t, alreadyLapsed)

	repo := new(MockPolicyHolderRepository)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		repo.On("GetAllWithActivePoliciesEndingBefore", ctx, asOf).
			Return([]*policyholder.PolicyHolder{holder}, nil).Once(),
		repo.On("Get", ctx, holder.ID()).Return(holder, nil).Once(),
	)

	h := commands.NewLapseExpiredPoliciesCommandHandler(repo, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishAll", mock.Anything, mock.Anything)
}

func TestLapseExpiredPoliciesCommandHandler_Handle_ContinuesPastFailingHolder(t *testing.T) {
	ctx := t.Context()
	asOf := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewLapseExpiredPoliciesCommand(asOf)
	require.NoError(t, err)

	failing := holderWithPolicies(t, expiredPolicy(t, asOf.AddDate(0, -2, 0)))
	healthy := holderWithPolicies(t, expiredPolicy(t, asOf.AddDate(0, -2, 0)))

	repo := new(MockPolicyHolderRepository)
	publisher := new(MockEventPublisher)
	repo.On("GetAllWithActivePoliciesEndingBefore", ctx, asOf).
		Return([]*policyholder.PolicyHolder{failing, healthy}, nil).Once()
	repo.On("Get", ctx, failing.ID()).Return(nil, errors.New("load error")).Once()
	repo.On("Get", ctx, healthy.ID()).Return(healthy, nil).Once()
	repo.On("Save", ctx, healthy).Return(nil).Once()
	publisher.On("PublishAll", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewLapseExpiredPoliciesCommandHandler(repo, publisher)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load error")
	assert.Equal(t, policyholder.PolicyStatusLapsed, healthy.Policies()[0].Status())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
