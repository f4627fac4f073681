package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alkareem_backend/internals/features/ramadan/arrangements/model"
)

func newArrangement(kind, location string) *model.ArrangementModel {
	return &model.ArrangementModel{
		ArrangementType:        kind,
		ArrangementLocation:    location,
		ArrangementDescription: "desc",
		ArrangementOrganizer:   "org",
		ArrangementCreatedBy:   uuid.New(),
		ArrangementIsActive:    true,
	}
}

func TestMemoryRepositoryInsertAssignsMonotonicIDs(t *testing.T) {
	repo := NewMemoryArrangementRepository()
	ctx := context.Background()

	a := newArrangement(model.ArrangementTypeSehri, "Jama Masjid, Delhi")
	b := newArrangement(model.ArrangementTypeIftari, "Mohammed Ali Road, Mumbai")

	require.NoError(t, repo.Insert(ctx, a))
	require.NoError(t, repo.Insert(ctx, b))

	assert.Equal(t, 1, a.ArrangementID)
	assert.Equal(t, 2, b.ArrangementID)
	assert.False(t, a.ArrangementCreatedAt.IsZero())
	require.NotNil(t, a.ArrangementUpdatedAt)
}

func TestMemoryRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewMemoryArrangementRepository()

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryUpdateIsAtomic(t *testing.T) {
	repo := NewMemoryArrangementRepository()
	ctx := context.Background()

	a := newArrangement(model.ArrangementTypeSehri, "Charminar, Hyderabad")
	require.NoError(t, repo.Insert(ctx, a))

	boom := errors.New("boom")
	_, err := repo.Update(ctx, a.ArrangementID, func(arr *model.ArrangementModel) error {
		arr.ArrangementLocation = "changed"
		return boom
	})
	require.ErrorIs(t, err, boom)

	// mutator gagal → record asli tidak berubah
	got, err := repo.GetByID(ctx, a.ArrangementID)
	require.NoError(t, err)
	assert.Equal(t, "Charminar, Hyderabad", got.ArrangementLocation)
}

func TestMemoryRepositoryUpdateReturnsCopy(t *testing.T) {
	repo := NewMemoryArrangementRepository()
	ctx := context.Background()

	a := newArrangement(model.ArrangementTypeSehri, "Mecca Masjid, Hyderabad")
	require.NoError(t, repo.Insert(ctx, a))

	updated, err := repo.Update(ctx, a.ArrangementID, func(arr *model.ArrangementModel) error {
		arr.ArrangementIsApproved = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.ArrangementIsApproved)

	// mutasi lewat return value tidak boleh tembus ke store
	updated.ArrangementLocation = "tampered"
	got, err := repo.GetByID(ctx, a.ArrangementID)
	require.NoError(t, err)
	assert.Equal(t, "Mecca Masjid, Hyderabad", got.ArrangementLocation)
}

func TestMemoryRepositoryListKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryArrangementRepository()
	ctx := context.Background()

	locations := []string{"Delhi A", "Mumbai B", "Hyderabad C"}
	for _, loc := range locations {
		require.NoError(t, repo.Insert(ctx, newArrangement(model.ArrangementTypeSehri, loc)))
	}

	out, err := repo.List(ctx, ArrangementFilter{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, loc := range locations {
		assert.Equal(t, loc, out[i].ArrangementLocation)
	}
}

func TestMemoryRepositoryListFilters(t *testing.T) {
	repo := NewMemoryArrangementRepository()
	ctx := context.Background()

	sehri := newArrangement(model.ArrangementTypeSehri, "Jama Masjid, Delhi")
	sehri.ArrangementIsApproved = true
	iftari := newArrangement(model.ArrangementTypeIftari, "Mohammed Ali Road, Mumbai")
	iftari.ArrangementIsApproved = true
	pending := newArrangement(model.ArrangementTypeIftari, "Lucknow Imambara")

	require.NoError(t, repo.Insert(ctx, sehri))
	require.NoError(t, repo.Insert(ctx, iftari))
	require.NoError(t, repo.Insert(ctx, pending))

	published := model.StatusPublished
	out, err := repo.List(ctx, ArrangementFilter{Status: &published})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// type case-insensitive exact
	out, err = repo.List(ctx, ArrangementFilter{Type: "IFTARI"})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// city substring case-insensitive terhadap location
	out, err = repo.List(ctx, ArrangementFilter{City: "mumbai"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Mohammed Ali Road, Mumbai", out[0].ArrangementLocation)

	// komposisi AND
	out, err = repo.List(ctx, ArrangementFilter{Status: &published, Type: "iftari", City: "delhi"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMemoryRepositoryCountByStatus(t *testing.T) {
	repo := NewMemoryArrangementRepository()
	ctx := context.Background()

	pub := newArrangement(model.ArrangementTypeSehri, "Delhi")
	pub.ArrangementIsApproved = true
	pen := newArrangement(model.ArrangementTypeIftari, "Mumbai")
	rej := newArrangement(model.ArrangementTypeIftari, "Kolkata")
	rej.ArrangementIsActive = false
	wd := newArrangement(model.ArrangementTypeSehri, "Hyderabad")
	wd.ArrangementIsActive = false
	wd.ArrangementIsApproved = true

	for _, arr := range []*model.ArrangementModel{pub, pen, rej, wd} {
		require.NoError(t, repo.Insert(ctx, arr))
	}

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[model.StatusPublished])
	assert.Equal(t, int64(1), counts[model.StatusPending])
	assert.Equal(t, int64(1), counts[model.StatusRejected])
	assert.Equal(t, int64(1), counts[model.StatusWithdrawn])
}
