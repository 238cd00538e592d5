// This file defines repository methods for shows. A show joins one
// artist to one venue at a start time; detail pages partition a
// counterpart's shows into past and upcoming with strict inequalities
// against a caller-supplied "now", so a show starting exactly at now
// appears in neither bucket.
package repository

import (
	"context"
	"database/sql"

	"gig-directory/internal/model"
)

// ShowListing is the denormalized row rendered on the shows page.
type ShowListing struct {
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// VenueShow is one row of a venue detail page: the booked artist plus
// the start time.
type VenueShow struct {
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// ArtistShow is one row of an artist detail page: the hosting venue
// plus the start time.
type ArtistShow struct {
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartTime      string
}

// ShowRepo manages persistence for shows. Shows are insert-only.
type ShowRepo struct {
	db *sql.DB
}

func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the
// struct. Unknown artist or venue ids violate the foreign keys and are
// reported as ErrConflict.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.ArtistID, s.VenueID, s.StartTime)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListAll returns every show joined with its venue and artist, ordered
// by start time. No date filter is applied.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
               FROM shows s
               JOIN venues v ON v.id = s.venue_id
               JOIN artists a ON a.id = s.artist_id
               ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ShowListing
	for rows.Next() {
		var l ShowListing
		if err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// PastByVenue returns the shows of one venue that started strictly
// before now, projected onto the booked artist.
func (r *ShowRepo) PastByVenue(ctx context.Context, venueID uint64, now string) ([]VenueShow, error) {
	return r.byVenue(ctx, venueID, `s.start_time < ?`, now)
}

// UpcomingByVenue returns the shows of one venue starting strictly
// after now.
func (r *ShowRepo) UpcomingByVenue(ctx context.Context, venueID uint64, now string) ([]VenueShow, error) {
	return r.byVenue(ctx, venueID, `s.start_time > ?`, now)
}

func (r *ShowRepo) byVenue(ctx context.Context, venueID uint64, cond, now string) ([]VenueShow, error) {
	q := `SELECT a.id, a.name, a.image_link, s.start_time
          FROM shows s
          JOIN artists a ON a.id = s.artist_id
          WHERE s.venue_id = ? AND ` + cond + `
          ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []VenueShow
	for rows.Next() {
		var s VenueShow
		if err := rows.Scan(&s.ArtistID, &s.ArtistName, &s.ArtistImageLink, &s.StartTime); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// PastByArtist returns the shows of one artist that started strictly
// before now, projected onto the hosting venue.
func (r *ShowRepo) PastByArtist(ctx context.Context, artistID uint64, now string) ([]ArtistShow, error) {
	return r.byArtist(ctx, artistID, `s.start_time < ?`, now)
}

// UpcomingByArtist returns the shows of one artist starting strictly
// after now.
func (r *ShowRepo) UpcomingByArtist(ctx context.Context, artistID uint64, now string) ([]ArtistShow, error) {
	return r.byArtist(ctx, artistID, `s.start_time > ?`, now)
}

func (r *ShowRepo) byArtist(ctx context.Context, artistID uint64, cond, now string) ([]ArtistShow, error) {
	q := `SELECT v.id, v.name, v.image_link, s.start_time
          FROM shows s
          JOIN venues v ON v.id = s.venue_id
          WHERE s.artist_id = ? AND ` + cond + `
          ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ArtistShow
	for rows.Next() {
		var s ArtistShow
		if err := rows.Scan(&s.VenueID, &s.VenueName, &s.VenueImageLink, &s.StartTime); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
