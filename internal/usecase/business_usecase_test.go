package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
)

type stubBusinessRepo struct {
	BusinessRepository
	business *domain.Business
	saved    *domain.Business
}

func (s *stubBusinessRepo) GetByID(_ context.Context, _ string) (*domain.Business, error) {
	return s.business, nil
}

func (s *stubBusinessRepo) Update(_ context.Context, business *domain.Business) (*domain.Business, error) {
	s.saved = business
	return business, nil
}

func strPtr(s string) *string { return &s }

func TestUpdateBusinessAppliesFields(t *testing.T) {
	repo := &stubBusinessRepo{
		business: &domain.Business{ID: "biz-1", Name: "Warung Lama", Address: "Jl. Mawar 1"},
	}
	uc := NewBusinessUC(repo, testLogger{})

	updated, err := uc.UpdateBusiness(context.Background(), &UpdateBusinessReq{
		BusinessID: "biz-1",
		Name:       strPtr("  Warung Baru  "),
		Address:    strPtr("Jl. Melati 2"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Warung Baru", updated.Name)
	assert.Equal(t, "Jl. Melati 2", updated.Address)
	require.NotNil(t, repo.saved)
	assert.Equal(t, "biz-1", repo.saved.ID)
}

func TestUpdateBusinessKeepsOmittedFields(t *testing.T) {
	repo := &stubBusinessRepo{
		business: &domain.Business{ID: "biz-1", Name: "Warung Lama", Address: "Jl. Mawar 1"},
	}
	uc := NewBusinessUC(repo, testLogger{})

	updated, err := uc.UpdateBusiness(context.Background(), &UpdateBusinessReq{
		BusinessID: "biz-1",
		Name:       strPtr("Warung Baru"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Warung Baru", updated.Name)
	assert.Equal(t, "Jl. Mawar 1", updated.Address)
}

func TestUpdateBusinessRejectsBlankName(t *testing.T) {
	repo := &stubBusinessRepo{
		business: &domain.Business{ID: "biz-1", Name: "Warung Lama"},
	}
	uc := NewBusinessUC(repo, testLogger{})

	_, err := uc.UpdateBusiness(context.Background(), &UpdateBusinessReq{
		BusinessID: "biz-1",
		Name:       strPtr("   "),
	})

	assert.ErrorIs(t, err, e.ErrMissingFields)
	assert.Nil(t, repo.saved)
}

func TestGetBusiness(t *testing.T) {
	business := &domain.Business{ID: "biz-1", Name: "Warung Lama"}
	uc := NewBusinessUC(&stubBusinessRepo{business: business}, testLogger{})

	got, err := uc.GetBusiness(context.Background(), "biz-1")

	require.NoError(t, err)
	assert.Same(t, business, got)
}
