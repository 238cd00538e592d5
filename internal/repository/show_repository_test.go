package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gig-directory/internal/model"
	"gig-directory/internal/testutil"
)

func TestShowCreateRepeatBooking(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)

	v := seedVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	a := seedArtist(t, artists, "Guns N Petals")

	// The same pairing can be booked again for a different night.
	first := seedShow(t, shows, a.ID, v.ID, "2030-05-01 20:00:00")
	second := seedShow(t, shows, a.ID, v.ID, "2030-05-02 20:00:00")
	assert.NotEqual(t, first.ID, second.ID)

	all, err := shows.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestShowCreateUnknownReferences(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)

	v := seedVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	a := seedArtist(t, artists, "Guns N Petals")

	err := shows.Create(context.Background(), &model.Show{ArtistID: 999999, VenueID: v.ID, StartTime: futureTime})
	assert.ErrorIs(t, err, ErrConflict)

	err = shows.Create(context.Background(), &model.Show{ArtistID: a.ID, VenueID: 999999, StartTime: futureTime})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestShowListAllJoinsAndOrders(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)

	v := seedVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	a := &model.Artist{
		Name: "Guns N Petals", City: "San Francisco", State: "CA",
		Genres: []string{"Rock n Roll"}, ImageLink: "https://example.com/gnp.jpg",
	}
	require.NoError(t, artists.Create(context.Background(), a))

	seedShow(t, shows, a.ID, v.ID, "2030-05-02 20:00:00")
	seedShow(t, shows, a.ID, v.ID, "2030-05-01 20:00:00")

	all, err := shows.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "2030-05-01 20:00:00", all[0].StartTime)
	assert.Equal(t, "2030-05-02 20:00:00", all[1].StartTime)
	assert.Equal(t, ShowListing{
		VenueID:         v.ID,
		VenueName:       "The Musical Hop",
		ArtistID:        a.ID,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.com/gnp.jpg",
		StartTime:       "2030-05-01 20:00:00",
	}, all[0])
}

func TestShowPastUpcomingPartition(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)

	v := seedVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	a := seedArtist(t, artists, "Guns N Petals")

	seedShow(t, shows, a.ID, v.ID, pastTime)
	seedShow(t, shows, a.ID, v.ID, futureTime)
	// The boundary show starts exactly at "now".
	seedShow(t, shows, a.ID, v.ID, testNow)

	ctx := context.Background()

	past, err := shows.PastByVenue(ctx, v.ID, testNow)
	require.NoError(t, err)
	upcoming, err := shows.UpcomingByVenue(ctx, v.ID, testNow)
	require.NoError(t, err)
	require.Len(t, past, 1)
	require.Len(t, upcoming, 1)
	assert.Equal(t, pastTime, past[0].StartTime)
	assert.Equal(t, futureTime, upcoming[0].StartTime)
	assert.Equal(t, "Guns N Petals", upcoming[0].ArtistName)

	artistPast, err := shows.PastByArtist(ctx, a.ID, testNow)
	require.NoError(t, err)
	artistUpcoming, err := shows.UpcomingByArtist(ctx, a.ID, testNow)
	require.NoError(t, err)
	require.Len(t, artistPast, 1)
	require.Len(t, artistUpcoming, 1)
	assert.Equal(t, "The Musical Hop", artistPast[0].VenueName)
}
