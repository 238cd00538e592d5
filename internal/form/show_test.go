package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowFormValidate(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("accepts datetime-local input", func(t *testing.T) {
		f := ShowForm{ArtistID: "4", VenueID: "1", StartTime: "2030-05-21T21:30"}
		s, errs := f.Validate(now)
		require.Empty(t, errs)
		assert.Equal(t, uint64(4), s.ArtistID)
		assert.Equal(t, uint64(1), s.VenueID)
		assert.Equal(t, "2030-05-21 21:30:00", s.StartTime)
	})

	t.Run("accepts the storage layout", func(t *testing.T) {
		f := ShowForm{ArtistID: "4", VenueID: "1", StartTime: "2030-05-21 21:30:00"}
		s, errs := f.Validate(now)
		require.Empty(t, errs)
		assert.Equal(t, "2030-05-21 21:30:00", s.StartTime)
	})

	t.Run("empty start time defaults to now", func(t *testing.T) {
		f := ShowForm{ArtistID: "4", VenueID: "1"}
		s, errs := f.Validate(now)
		require.Empty(t, errs)
		assert.Equal(t, "2026-01-01 12:00:00", s.StartTime)
	})

	t.Run("missing ids", func(t *testing.T) {
		_, errs := ShowForm{}.Validate(now)
		require.Len(t, errs, 2)
	})

	t.Run("non-numeric ids", func(t *testing.T) {
		f := ShowForm{ArtistID: "abc", VenueID: "-1", StartTime: "2030-05-21T21:30"}
		_, errs := f.Validate(now)
		require.Len(t, errs, 2)
	})

	t.Run("garbage start time", func(t *testing.T) {
		f := ShowForm{ArtistID: "4", VenueID: "1", StartTime: "next tuesday"}
		_, errs := f.Validate(now)
		require.Len(t, errs, 1)
		assert.Equal(t, "start_time", errs[0].Field)
	})
}
