package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alkareem_backend/internals/features/ramadan/arrangements/dto"
	"alkareem_backend/internals/features/ramadan/arrangements/model"
)

func iftariRequest() dto.CreateArrangementRequest {
	return dto.CreateArrangementRequest{
		ArrangementType:        "Iftari",
		ArrangementLocation:    "Mohammed Ali Road, Mumbai",
		ArrangementDescription: "Grand community Iftari with dates, samosas, and biryani",
		ArrangementOrganizer:   "Mumbai Muslim Welfare Society",
		ArrangementCoordinates: &dto.CoordinatesRequest{Lat: ptr(18.9641), Lng: ptr(72.8270)},
	}
}

func TestPublicListOnlyPublished(t *testing.T) {
	mod, query := newTestServices()
	ctx := context.Background()
	admin := adminActor()

	sehri, err := mod.Create(ctx, arrangerActor(), sehriRequest())
	require.NoError(t, err)
	iftari, err := mod.Create(ctx, arrangerActor(), iftariRequest())
	require.NoError(t, err)
	_, err = mod.Create(ctx, arrangerActor(), sehriRequest()) // tetap pending
	require.NoError(t, err)

	_, err = mod.Approve(ctx, admin, sehri.ArrangementID)
	require.NoError(t, err)
	_, err = mod.Approve(ctx, admin, iftari.ArrangementID)
	require.NoError(t, err)

	out, err := query.PublicList(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// filter type + city, case-insensitive
	out, err = query.PublicList(ctx, "iftari", "mumbai")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Mohammed Ali Road, Mumbai", out[0].ArrangementLocation)

	// type tidak dikenal → diabaikan, bukan error
	out, err = query.PublicList(ctx, "dinner", "")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestGetPublicHidesNonPublished(t *testing.T) {
	mod, query := newTestServices()
	ctx := context.Background()
	admin := adminActor()

	pending, err := mod.Create(ctx, arrangerActor(), sehriRequest())
	require.NoError(t, err)

	// pending tidak terlihat, tidak bisa dibedakan dari id yang tidak ada
	_, err = query.GetPublic(ctx, pending.ArrangementID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = query.GetPublic(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = mod.Approve(ctx, admin, pending.ArrangementID)
	require.NoError(t, err)
	got, err := query.GetPublic(ctx, pending.ArrangementID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, got.Status())

	// setelah reject/withdraw juga hilang lagi
	_, err = mod.Delete(ctx, admin, pending.ArrangementID)
	require.NoError(t, err)
	_, err = query.GetPublic(ctx, pending.ArrangementID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMapMarkers(t *testing.T) {
	mod, query := newTestServices()
	ctx := context.Background()
	admin := adminActor()

	withCoords, err := mod.Create(ctx, arrangerActor(), sehriRequest())
	require.NoError(t, err)

	noCoords := iftariRequest()
	noCoords.ArrangementCoordinates = nil
	plain, err := mod.Create(ctx, arrangerActor(), noCoords)
	require.NoError(t, err)

	longDesc := iftariRequest()
	longDesc.ArrangementDescription = strings.Repeat("b", 150)
	long, err := mod.Create(ctx, arrangerActor(), longDesc)
	require.NoError(t, err)

	for _, id := range []int{withCoords.ArrangementID, plain.ArrangementID, long.ArrangementID} {
		_, err = mod.Approve(ctx, admin, id)
		require.NoError(t, err)
	}

	markers, err := query.MapMarkers(ctx)
	require.NoError(t, err)
	// tanpa koordinat → tanpa marker
	require.Len(t, markers, 2)

	sehriMarker := markers[0]
	assert.Equal(t, withCoords.ArrangementID, sehriMarker.ArrangementID)
	assert.Equal(t, "mosque", sehriMarker.Icon)
	assert.Equal(t, "Sehri - Jama Masjid, Delhi", sehriMarker.Title)
	assert.InDelta(t, 28.6507, sehriMarker.Coordinates.Lat, 1e-9)

	longMarker := markers[1]
	assert.Equal(t, "restaurant", longMarker.Icon)
	// deskripsi panjang dipotong 100 + ellipsis
	assert.Equal(t, strings.Repeat("b", 100)+"...", longMarker.Description)
}

func TestPendingListAndDashboardStats(t *testing.T) {
	mod, query := newTestServices()
	ctx := context.Background()
	admin := adminActor()

	a, err := mod.Create(ctx, arrangerActor(), sehriRequest())
	require.NoError(t, err)
	b, err := mod.Create(ctx, arrangerActor(), iftariRequest())
	require.NoError(t, err)
	c, err := mod.Create(ctx, arrangerActor(), sehriRequest())
	require.NoError(t, err)
	d, err := mod.Create(ctx, arrangerActor(), iftariRequest())
	require.NoError(t, err)

	_, err = mod.Approve(ctx, admin, a.ArrangementID)
	require.NoError(t, err)
	_, err = mod.Reject(ctx, admin, b.ArrangementID, "tidak valid")
	require.NoError(t, err)
	_, err = mod.Approve(ctx, admin, c.ArrangementID)
	require.NoError(t, err)
	_, err = mod.Delete(ctx, admin, c.ArrangementID)
	require.NoError(t, err)

	pendingOut, err := query.PendingList(ctx)
	require.NoError(t, err)
	require.Len(t, pendingOut, 1)
	assert.Equal(t, d.ArrangementID, pendingOut[0].ArrangementID)

	stats, err := query.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Published)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Rejected)
	assert.Equal(t, int64(1), stats.Withdrawn)
	assert.Equal(t, int64(4), stats.Total)
}
