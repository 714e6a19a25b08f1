package commands_test

import (
	"context"
	"testing"
	"time"

	"insurance/internal/core/domain/model/event"
	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPolicyHolderRepository struct{ mock.Mock }

func (m *MockPolicyHolderRepository) Save(ctx context.Context, holder *policyholder.PolicyHolder) error {
	args := m.Called(ctx, holder)
	return args.Error(0)
}

func (m *MockPolicyHolderRepository) Get(ctx context.Context, id kernel.UUID) (*policyholder.PolicyHolder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policyholder.PolicyHolder), args.Error(1)
}

func (m *MockPolicyHolderRepository) GetByNationalID(
	ctx context.Context,
	nationalID kernel.NationalID,
) (*policyholder.PolicyHolder, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policyholder.PolicyHolder), args.Error(1)
}

func (m *MockPolicyHolderRepository) ExistsByNationalID(
	ctx context.Context,
	nationalID kernel.NationalID,
) (bool, error) {
	args := m.Called(ctx, nationalID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPolicyHolderRepository) GetAllWithActivePoliciesEndingBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*policyholder.PolicyHolder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*policyholder.PolicyHolder), args.Error(1)
}

func (m *MockPolicyHolderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, domainEvent event.DomainEvent) error {
	args := m.Called(ctx, domainEvent)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishAll(ctx context.Context, domainEvents []event.DomainEvent) error {
	args := m.Called(ctx, domainEvents)
	return args.Error(0)
}

func (m *MockEventPublisher) Subscribe(subscriber ports.EventSubscriber) {
	m.Called(subscriber)
}

// Shared fixtures.

func validNationalID(t *testing.T) kernel.NationalID {
	t.Helper()
	nationalID, err := kernel.NewNationalID("B234567890")
	require.NoError(t, err)
	return nationalID
}

func validPersonalInfo(t *testing.T) kernel.PersonalInfo {
	t.Helper()
	personalInfo, err := kernel.NewPersonalInfo(
		"Lin Mei", kernel.GenderFemale, time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return personalInfo
}

func validContactInfo(t *testing.T) kernel.ContactInfo {
	t.Helper()
	contactInfo, err := kernel.NewContactInfo("0922333444", "lin.mei@example.com")
	require.NoError(t, err)
	return contactInfo
}

func validAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("80661", "Kaohsiung", "Qianzhen", "5 Zhongshan Rd")
	require.NoError(t, err)
	return address
}

func validMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	money, err := kernel.MoneyFromInt(amount)
	require.NoError(t, err)
	return money
}

func activeHolder(t *testing.T) *policyholder.PolicyHolder {
	t.Helper()
	holder, err := policyholder.NewPolicyHolder(kernel.NewUUID(), validNationalID(t),
		validPersonalInfo(t), validContactInfo(t), validAddress(t))
	require.NoError(t, err)
	holder.DrainEvents()
	return holder
}

func restoredHolder(t *testing.T, status policyholder.HolderStatus, version int) *policyholder.PolicyHolder {
	t.Helper()
	holder, err := policyholder.RestorePolicyHolder(kernel.NewUUID(), validNationalID(t),
		validPersonalInfo(t), validContactInfo(t), validAddress(t), status, version, nil)
	require.NoError(t, err)
	return holder
}
