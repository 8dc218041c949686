package category

import (
	"context"
	"strings"
	"testing"

	"catalog-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created []string
	err     error
}

func (f *fakeRepo) ListAll(_ context.Context) ([]domain.Category, error) {
	return nil, f.err
}

func (f *fakeRepo) Create(_ context.Context, name string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, name)
	return &domain.Category{ID: "generated", Name: name}, nil
}

func TestCreate_RejectsEmptyName(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)

	_, err := svc.Create(context.Background(), "")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Empty(t, repo.created, "store must not be reached")
}

func TestCreate_RejectsOverlongName(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)

	_, err := svc.Create(context.Background(), strings.Repeat("x", domain.MaxCategoryNameLen+1))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.created)
}

func TestCreate_AcceptsMaxLengthName(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)

	got, err := svc.Create(context.Background(), strings.Repeat("x", domain.MaxCategoryNameLen))

	require.NoError(t, err)
	assert.Equal(t, "generated", got.ID)
}

func TestCreate_PassesConflictThrough(t *testing.T) {
	svc := New(&fakeRepo{err: domain.ErrConflict})

	_, err := svc.Create(context.Background(), "Audio")

	assert.ErrorIs(t, err, domain.ErrConflict)
}
