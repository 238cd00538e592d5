package model

// TimeLayout is the DB timestamp layout used for show start times.
// All times are stored in UTC; lexicographic comparison on this
// layout is chronological, which the repositories rely on.
const TimeLayout = "2006-01-02 15:04:05"

// Show links one artist to one venue at a start time.  A show has its
// own surrogate key so the same artist can be booked at the same venue
// more than once.  Shows are created through the booking form and are
// never updated or deleted afterwards.
// NOTE: StartTime is the DB timestamp string "YYYY-MM-DD HH:MM:SS" (UTC).
type Show struct {
	ID        uint64 // shows.id
	ArtistID  uint64 // shows.artist_id
	VenueID   uint64 // shows.venue_id
	StartTime string // shows.start_time
}
