package commands_test

import (
	"testing"

	"insurance/internal/core/application/usecases/commands"
	"insurance/internal/core/domain/model/event"
	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/core/domain/services"
	"insurance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateContactInfoCommand(t *testing.T) {
	t.Run("should reject unconstructed contact info", func(t *testing.T) {
		var invalid kernel.ContactInfo

		_, err := commands.NewUpdateContactInfoCommand(kernel.NewUUID(), invalid)

		require.Error(t, err)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.UpdateContactInfoCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateContactInfoCommandIsNotConstructed)
	})
}

func TestUpdateContactInfoCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	holder := activeHolder(t)
	newContactInfo, err := kernel.NewContactInfo("0955666777", "updated@example.com")
	require.NoError(t, err)
	cmd, err := commands.NewUpdateContactInfoCommand(holder.ID(), newContactInfo)
	require.NoError(t, err)

	repo := new(MockPolicyHolderRepository)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		repo.On("Get", ctx, holder.ID()).Return(holder, nil).Once(),
		repo.On("Save", ctx, holder).Return(nil).Once(),
		publisher.On("PublishAll", ctx, mock.MatchedBy(func(events []event.DomainEvent) bool {
			return len(events) == 1 && events[0].EventType() == event.TypeContactInfoUpdated
		})).Return(nil).Once(),
	)

	h := commands.NewUpdateContactInfoCommandHandler(repo, publisher, services.NewPolicyHolderService())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, holder.ContactInfo().IsEqual(newContactInfo))
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateContactInfoCommandHandler_Handle_InactiveHolder(t *testing.T) {
	ctx := t.Context()
	holder := restoredHolder(t, policyholder.HolderStatusInactive, 3)
	cmd, err := commands.NewUpdateContactInfoCommand(holder.ID(), validContactInfo(t))
	require.NoError(t, err)

	repo := new(MockPolicyHolderRepository)
	repo.On("Get", ctx, holder.ID()).Return(holder, nil).Once()

	h := commands.NewUpdateContactInfoCommandHandler(
		repo, new(MockEventPublisher), services.NewPolicyHolderService())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateContactInfoCommandHandler_Handle_RetriesOnConflict(t *testing.T) {
	ctx := t.Context()
	stale := activeHolder(t)
	fresh := restoredHolder(t, policyholder.HolderStatusActive, 2)
	cmd, err := commands.NewUpdateContactInfoCommand(stale.ID(), validContactInfo(t))
	require.NoError(t, err)

	repo := new(MockPolicyHolderRepository)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		repo.On("Get", ctx, cmd.HolderID()).Return(stale, nil).Once(),
		repo.On("Save", ctx, stale).
			Return(errs.NewConcurrencyConflictError(stale.ID().String(), stale.Version())).Once(),
		repo.On("Get", ctx, cmd.HolderID()).Return(fresh, nil).Once(),
		repo.On("Save", ctx, fresh).Return(nil).Once(),
		publisher.On("PublishAll", ctx, mock.Anything).Return(nil).Once(),
	)

	h := commands.NewUpdateContactInfoCommandHandler(repo, publisher, services.NewPolicyHolderService())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, fresh.Version())
	repo.AssertExpectations(t)
}
