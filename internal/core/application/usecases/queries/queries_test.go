package queries_test

import (
	"context"
	"testing"

	"insurance/internal/core/application/usecases/queries"
	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/core/ports"
	"insurance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPolicyHolderQueryRepository struct{ mock.Mock }

func (m *MockPolicyHolderQueryRepository) GetByID(ctx context.Context, id string) (*ports.PolicyHolderReadModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PolicyHolderReadModel), args.Error(1)
}

func (m *MockPolicyHolderQueryRepository) GetByNationalID(
	ctx context.Context,
	nationalID string,
) (*ports.PolicyHolderReadModel, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PolicyHolderReadModel), args.Error(1)
}

func (m *MockPolicyHolderQueryRepository) SearchByName(
	ctx context.Context,
	keyword string,
	page, size int,
) ([]ports.PolicyHolderReadModel, error) {
	args := m.Called(ctx, keyword, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.PolicyHolderReadModel), args.Error(1)
}

func (m *MockPolicyHolderQueryRepository) FindByStatus(
	ctx context.Context,
	status string,
	page, size int,
) ([]ports.PolicyHolderReadModel, error) {
	args := m.Called(ctx, status, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.PolicyHolderReadModel), args.Error(1)
}

func (m *MockPolicyHolderQueryRepository) CountByName(ctx context.Context, keyword string) (int64, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPolicyHolderQueryRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func TestGetPolicyHolderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should return the read model", func(t *testing.T) {
		holderID := kernel.NewUUID()
		query, err := queries.NewGetPolicyHolderQuery(holderID)
		require.NoError(t, err)

		repo := new(MockPolicyHolderQueryRepository)
		readModel := &ports.PolicyHolderReadModel{ID: holderID.String(), Name: "Chen Wei"}
		repo.On("GetByID", ctx, holderID.String()).Return(readModel, nil).Once()

		h := queries.NewGetPolicyHolderQueryHandler(repo)
		got, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, readModel, got)
		repo.AssertExpectations(t)
	})

	t.Run("should propagate not-found", func(t *testing.T) {
		holderID := kernel.NewUUID()
		query, err := queries.NewGetPolicyHolderQuery(holderID)
		require.NoError(t, err)

		repo := new(MockPolicyHolderQueryRepository)
		repo.On("GetByID", ctx, holderID.String()).
			Return(nil, errs.NewObjectNotFoundError("holderId", holderID.String())).Once()

		h := queries.NewGetPolicyHolderQueryHandler(repo)
		_, err = h.Handle(ctx, query)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		h := queries.NewGetPolicyHolderQueryHandler(new(MockPolicyHolderQueryRepository))
		_, err := h.Handle(ctx, queries.GetPolicyHolderQuery{})

		require.Error(t, err)
	})

	t.Run("should reject unconstructed UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetPolicyHolderQuery(invalidID)

		require.Error(t, err)
	})
}

func TestGetPolicyHolderByNationalIDQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	nationalID, err := kernel.NewNationalID("C345678901")
	require.NoError(t, err)

	query, err := queries.NewGetPolicyHolderByNationalIDQuery(nationalID)
	require.NoError(t, err)

	repo := new(MockPolicyHolderQueryRepository)
	readModel := &ports.PolicyHolderReadModel{MaskedNationalID: nationalID.Masked()}
	repo.On("GetByNationalID", ctx, "C345678901").Return(readModel, nil).Once()

	h := queries.NewGetPolicyHolderByNationalIDQueryHandler(repo)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, readModel, got)
	repo.AssertExpectations(t)
}

func TestNewSearchPolicyHoldersByNameQuery_Clamping(t *testing.T) {
	testCases := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{"in range", 2, 20, 2, 20},
		{"oversized page size", 0, 500, 0, 100},
		{"negative page", -3, 10, 0, 10},
		{"zero size", 1, 0, 1, 1},
		{"negative size", 1, -5, 1, 1},
		{"upper bound is inclusive", 0, 100, 0, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewSearchPolicyHoldersByNameQuery("Chen", tc.page, tc.size)

			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, query.Page())
			assert.Equal(t, tc.wantSize, query.Size())
		})
	}

	t.Run("should reject empty keyword", func(t *testing.T) {
		_, err := queries.NewSearchPolicyHoldersByNameQuery("", 0, 10)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSearchPolicyHoldersByNameQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should return page and total", func(t *testing.T) {
		query, err := queries.NewSearchPolicyHoldersByNameQuery("Chen", 1, 2)
		require.NoError(t, err)

		repo := new(MockPolicyHolderQueryRepository)
		page := []ports.PolicyHolderReadModel{{Name: "Chen Wei"}, {Name: "Chen Yi"}}
		repo.On("SearchByName", ctx, "Chen", 1, 2).Return(page, nil).Once()
		repo.On("CountByName", ctx, "Chen").Return(int64(5), nil).Once()

		h := queries.NewSearchPolicyHoldersByNameQueryHandler(repo)
		got, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, page, got.Holders)
		assert.Equal(t, int64(5), got.Total)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 2, got.Size)
		repo.AssertExpectations(t)
	})

	t.Run("empty page is not an error", func(t *testing.T) {
		query, err := queries.NewSearchPolicyHoldersByNameQuery("Nobody", 0, 10)
		require.NoError(t, err)

		repo := new(MockPolicyHolderQueryRepository)
		repo.On("SearchByName", ctx, "Nobody", 0, 10).
			Return([]ports.PolicyHolderReadModel{}, nil).Once()
		repo.On("CountByName", ctx, "Nobody").Return(int64(0), nil).Once()

		h := queries.NewSearchPolicyHoldersByNameQueryHandler(repo)
		got, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, got.Holders)
		assert.Zero(t, got.Total)
	})
}

func TestNewListPolicyHoldersByStatusQuery(t *testing.T) {
	t.Run("should clamp paging", func(t *testing.T) {
		query, err := queries.NewListPolicyHoldersByStatusQuery(policyholder.HolderStatusActive, -1, 500)

		require.NoError(t, err)
		assert.Equal(t, 0, query.Page())
		assert.Equal(t, 100, query.Size())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := queries.NewListPolicyHoldersByStatusQuery(policyholder.HolderStatusUnknown, 0, 10)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestListPolicyHoldersByStatusQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewListPolicyHoldersByStatusQuery(policyholder.HolderStatusInactive, 0, 10)
	require.NoError(t, err)

	repo := new(MockPolicyHolderQueryRepository)
	page := []ports.PolicyHolderReadModel{{Name: "Lin Mei", Status: "Inactive"}}
	repo.On("FindByStatus", ctx, "Inactive", 0, 10).Return(page, nil).Once()
	repo.On("CountByStatus", ctx, "Inactive").Return(int64(1), nil).Once()

	h := queries.NewListPolicyHoldersByStatusQueryHandler(repo)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, page, got.Holders)
	assert.Equal(t, int64(1), got.Total)
	repo.AssertExpectations(t)
}
