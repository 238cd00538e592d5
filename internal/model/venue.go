package model

// Venue represents a bookable performance space listed in the
// directory.  Each venue belongs to exactly one city/state area and
// can host any number of shows.  This struct corresponds to a row in
// the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – unique name of the venue.
//  City, State        – area the venue is grouped under on the listing page.
//  Address, Phone     – contact details, required on creation.
//  Genres             – ordered list of genres, stored JSON-encoded.
//  ImageLink          – optional image URL.
//  FacebookLink       – optional Facebook URL.
//  Website            – optional website URL.
//  SeekingTalent      – whether the venue is currently looking for artists.
//  SeekingDescription – free-text blurb shown when seeking talent.
type Venue struct {
	ID                 uint64   // venues.id
	Name               string   // venues.name
	City               string   // venues.city
	State              string   // venues.state
	Address            string   // venues.address
	Phone              string   // venues.phone
	Genres             []string // venues.genres (JSON array)
	ImageLink          string   // venues.image_link
	FacebookLink       string   // venues.facebook_link
	Website            string   // venues.website
	SeekingTalent      bool     // venues.seeking_talent
	SeekingDescription string   // venues.seeking_description
}
