package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gig-directory/internal/model"
	"gig-directory/internal/testutil"
)

const (
	pastTime   = "2001-06-15 20:00:00"
	futureTime = "2999-06-15 20:00:00"
	testNow    = "2026-01-01 12:00:00"
)

func seedVenue(t *testing.T, r *VenueRepo, name, city, state string) *model.Venue {
	t.Helper()
	v := &model.Venue{
		Name:    name,
		City:    city,
		State:   state,
		Address: "1 Main St",
		Phone:   "555-0100",
		Genres:  []string{"Jazz", "Folk"},
	}
	require.NoError(t, r.Create(context.Background(), v))
	return v
}

func seedArtist(t *testing.T, r *ArtistRepo, name string) *model.Artist {
	t.Helper()
	a := &model.Artist{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	}
	require.NoError(t, r.Create(context.Background(), a))
	return a
}

func seedShow(t *testing.T, r *ShowRepo, artistID, venueID uint64, start string) *model.Show {
	t.Helper()
	s := &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}
	require.NoError(t, r.Create(context.Background(), s))
	return s
}

func TestVenueAreasOrderedByStateThenCity(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)

	seedVenue(t, venues, "The Dueling Pianos Bar", "New York", "NY")
	seedVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	seedVenue(t, venues, "Park Square Live Music & Coffee", "San Francisco", "CA")
	seedVenue(t, venues, "Desert Star", "Phoenix", "AZ")

	areas, err := venues.Areas(context.Background())
	require.NoError(t, err)

	want := []Area{
		{City: "Phoenix", State: "AZ"},
		{City: "San Francisco", State: "CA"},
		{City: "New York", State: "NY"},
	}
	assert.Equal(t, want, areas)
}

func TestVenueListByAreaCountsOnlyUpcomingShows(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)

	hop := seedVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	park := seedVenue(t, venues, "Park Square Live Music & Coffee", "San Francisco", "CA")
	band := seedArtist(t, artists, "The Wild Sax Band")

	seedShow(t, shows, band.ID, hop.ID, futureTime)
	seedShow(t, shows, band.ID, hop.ID, pastTime)
	// A show starting exactly at "now" counts as neither past nor upcoming.
	seedShow(t, shows, band.ID, park.ID, testNow)

	list, err := venues.ListByArea(context.Background(), "San Francisco", "CA", testNow)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byName := map[string]VenueSummary{}
	for _, v := range list {
		byName[v.Name] = v
	}
	assert.Equal(t, 1, byName["The Musical Hop"].NumUpcomingShows)
	assert.Equal(t, 0, byName["Park Square Live Music & Coffee"].NumUpcomingShows)
}

func TestVenueSearchIsCaseInsensitiveSubstring(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)

	seedVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	seedVenue(t, venues, "Park Square Live Music & Coffee", "San Francisco", "CA")
	seedVenue(t, venues, "The Dueling Pianos Bar", "New York", "NY")

	ctx := context.Background()

	lower, err := venues.SearchByName(ctx, "hop", testNow)
	require.NoError(t, err)
	upper, err := venues.SearchByName(ctx, "HOP", testNow)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
	require.Len(t, lower, 1)
	assert.Equal(t, "The Musical Hop", lower[0].Name)

	music, err := venues.SearchByName(ctx, "Music", testNow)
	require.NoError(t, err)
	require.Len(t, music, 2)

	none, err := venues.SearchByName(ctx, "does-not-exist", testNow)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestVenueCreateDuplicateName(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)

	seedVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	dup := &model.Venue{
		Name: "The Musical Hop", City: "Oakland", State: "CA",
		Address: "2 Side St", Phone: "555-0101", Genres: []string{"Blues"},
	}
	err := venues.Create(context.Background(), dup)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestVenueGetByIDRoundTrip(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)

	v := &model.Venue{
		Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Address: "1015 Folsom Street", Phone: "123-123-1234",
		Genres:  []string{"Jazz", "Reggae", "Swing"},
		Website: "https://www.themusicalhop.com", SeekingTalent: true,
		SeekingDescription: "Looking for a local artist.",
	}
	require.NoError(t, venues.Create(context.Background(), v))
	require.NotZero(t, v.ID)

	got, err := venues.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = venues.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueUpdateOverwritesAllFields(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)

	v := seedVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	v.Name = "The Musical Hop II"
	v.City = "Oakland"
	v.Genres = []string{"Blues"}
	v.SeekingTalent = false
	require.NoError(t, venues.Update(context.Background(), v))

	got, err := venues.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop II", got.Name)
	assert.Equal(t, "Oakland", got.City)
	assert.Equal(t, []string{"Blues"}, got.Genres)
	assert.False(t, got.SeekingTalent)
}

func TestVenueUpdateMissingRow(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)

	ghost := &model.Venue{ID: 424242, Name: "Ghost", City: "Nowhere", State: "CA",
		Address: "0", Phone: "0", Genres: []string{"Other"}}
	err := venues.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueDelete(t *testing.T) {
	db := testutil.OpenTestDB(t)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)

	t.Run("missing venue", func(t *testing.T) {
		err := venues.DeleteByID(context.Background(), 999999)
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("venue with booked shows is protected", func(t *testing.T) {
		v := seedVenue(t, venues, "Booked Hall", "Austin", "TX")
		a := seedArtist(t, artists, "Guns N Petals")
		seedShow(t, shows, a.ID, v.ID, futureTime)

		err := venues.DeleteByID(context.Background(), v.ID)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("venue without shows is removed", func(t *testing.T) {
		v := seedVenue(t, venues, "Empty Hall", "Austin", "TX")
		require.NoError(t, venues.DeleteByID(context.Background(), v.ID))
		_, err := venues.GetByID(context.Background(), v.ID)
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})
}
