package form

import (
	"net/url"
	"slices"
)

// StateChoices are the valid values for the state select, US states
// plus DC.
var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// GenreChoices are the valid values for the genres multi-select.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic",
	"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

func validState(s string) bool {
	return slices.Contains(StateChoices, s)
}

func validGenres(genres []string) bool {
	if len(genres) == 0 {
		return false
	}
	for _, g := range genres {
		if !slices.Contains(GenreChoices, g) {
			return false
		}
	}
	return true
}

// validLink accepts empty values; otherwise the value must parse as an
// absolute http(s) URL with a host.
func validLink(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
