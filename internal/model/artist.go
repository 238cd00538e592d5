package model

// Artist represents a performer listed in the directory.  Artists are
// never deleted through the application; they are only created and
// edited.  This struct corresponds to a row in the `artists` table.
type Artist struct {
	ID                 uint64   // artists.id
	Name               string   // artists.name
	City               string   // artists.city
	State              string   // artists.state
	Phone              string   // artists.phone (optional)
	Genres             []string // artists.genres (JSON array)
	ImageLink          string   // artists.image_link
	FacebookLink       string   // artists.facebook_link
	Website            string   // artists.website
	SeekingVenue       bool     // artists.seeking_venue
	SeekingDescription string   // artists.seeking_description
}
