package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gig-directory/internal/model"
)

func validArtistValues() url.Values {
	return url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	}
}

func TestArtistFormValidate(t *testing.T) {
	t.Run("phone is optional", func(t *testing.T) {
		f, err := ParseArtistForm(formContext(t, validArtistValues()))
		require.NoError(t, err)
		assert.Empty(t, f.Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		f := ArtistForm{Genres: []string{"Rock n Roll"}}
		errs := f.Validate()
		fields := map[string]bool{}
		for _, e := range errs {
			fields[e.Field] = true
		}
		assert.True(t, fields["name"])
		assert.True(t, fields["city"])
		assert.True(t, fields["state"])
		assert.False(t, fields["phone"])
	})

	t.Run("unknown state and genre", func(t *testing.T) {
		values := validArtistValues()
		values.Set("state", "XX")
		values["genres"] = []string{"Vaporwave"}
		f, err := ParseArtistForm(formContext(t, values))
		require.NoError(t, err)
		errs := f.Validate()
		require.Len(t, errs, 2)
	})
}

func TestArtistFormCheckboxSemantics(t *testing.T) {
	values := validArtistValues()
	values.Set("seeking_venue", "y")
	f, err := ParseArtistForm(formContext(t, values))
	require.NoError(t, err)
	assert.True(t, f.Model().SeekingVenue)

	absent, err := ParseArtistForm(formContext(t, validArtistValues()))
	require.NoError(t, err)
	assert.False(t, absent.Model().SeekingVenue)

	a := model.Artist{SeekingVenue: true}
	absent.Apply(&a)
	assert.True(t, a.SeekingVenue)
}
