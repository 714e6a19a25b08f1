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

func TestNewUpdateAddressCommand(t *testing.T) {
	t.Run("should reject unconstructed address", func(t *testing.T) {
		var invalid kernel.Address

		_, err := commands.NewUpdateAddressCommand(kernel.NewUUID(), invalid)

		require.Error(t, err)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.UpdateAddressCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateAddressCommandIsNotConstructed)
	})
}

func TestUpdateAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	holder := activeHolder(t)
	newAddress, err := kernel.NewAddress("30010", "Hsinchu", "East", "2 Guangfu Rd")
	require.NoError(t, err)
	cmd, err := commands.NewUpdateAddressCommand(holder.ID(), newAddress)
	require.NoError(t, err)

	repo := new(MockPolicyHolderRepository)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		repo.On("Get", ctx, holder.ID()).Return(holder, nil).Once(),
		repo.On("Save", ctx, holder).Return(nil).Once(),
		publisher.On("PublishAll", ctx, mock.MatchedBy(func(events []event.DomainEvent) bool {
			return len(events) == 1 && events[0].EventType() == event.TypeAddressUpdated
		})).Return(nil).Once(),
	)

	h := commands.NewUpdateAddressCommandHandler(repo, publisher, services.NewPolicyHolderService())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, holder.Address().IsEqual(newAddress))
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateAddressCommandHandler_Handle_InactiveHolder(t *testing.T) {
	ctx := t.Context()
	holder := restoredHolder(t, policyholder.HolderStatusInactive, 1)
	cmd, err := commands.NewUpdateAddressCommand(holder.ID(), validAddress(t))
	require.NoError(t, err)

	repo := new(MockPolicyHolderRepository)
	repo.On("Get", ctx, holder.ID()).Return(holder, nil).Once()

	h := commands.NewUpdateAddressCommandHandler(
		repo, new(MockEventPublisher), services.NewPolicyHolderService())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
