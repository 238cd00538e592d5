// This file defines repository methods for venues. Venues are grouped
// by (city, state) on the listing page and annotated with a live count
// of upcoming shows; both are recomputed on every request. Time
// arguments are DB timestamp strings ("2006-01-02 15:04:05" UTC)
// supplied by the caller so that "now" is never computed in SQL.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"gig-directory/internal/model"
)

// Area is a distinct (city, state) pair that groups venues on the
// listing page.
type Area struct {
	City  string
	State string
}

// VenueSummary is the listing/search projection of a venue: just
// enough to link to the detail page plus the upcoming-show count.
type VenueSummary struct {
	ID               uint64
	Name             string
	NumUpcomingShows int
}

// VenueRepo manages persistence for venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Areas returns every distinct (city, state) pair across all venues,
// ordered by state then city. When no venues exist it returns an empty
// slice and nil error.
func (r *VenueRepo) Areas(ctx context.Context) ([]Area, error) {
	const q = `SELECT DISTINCT city, state FROM venues ORDER BY state, city`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var areas []Area
	for rows.Next() {
		var a Area
		if err := rows.Scan(&a.City, &a.State); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return areas, nil
}

// ListByArea returns the venues of one city/state pair, each with the
// count of shows starting strictly after now. Venues without upcoming
// shows are still listed with a count of zero.
func (r *VenueRepo) ListByArea(ctx context.Context, city, state, now string) ([]VenueSummary, error) {
	const q = `SELECT v.id, v.name, COUNT(s.id)
               FROM venues v
               LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > ?
               WHERE v.city = ? AND v.state = ?
               GROUP BY v.id, v.name
               ORDER BY v.name`
	rows, err := r.db.QueryContext(ctx, q, now, city, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []VenueSummary
	for rows.Next() {
		var v VenueSummary
		if err := rows.Scan(&v.ID, &v.Name, &v.NumUpcomingShows); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchByName performs a case-insensitive substring match on venue
// names and annotates each hit with its upcoming-show count. An empty
// result is not an error; the caller decides how to render it.
func (r *VenueRepo) SearchByName(ctx context.Context, term, now string) ([]VenueSummary, error) {
	const q = `SELECT v.id, v.name, COUNT(s.id)
               FROM venues v
               LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > ?
               WHERE LOWER(v.name) LIKE ?
               GROUP BY v.id, v.name
               ORDER BY v.name`
	rows, err := r.db.QueryContext(ctx, q, now, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []VenueSummary
	for rows.Next() {
		var v VenueSummary
		if err := rows.Scan(&v.ID, &v.Name, &v.NumUpcomingShows); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new venue and assigns the generated ID back to the
// struct. A duplicate name is reported as ErrDuplicateName.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	genres, err := encodeGenres(v.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO venues
               (name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, genres,
		v.ImageLink, v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID retrieves a venue by its ID. It returns ErrVenueNotFound if
// there is no matching row.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description
               FROM venues WHERE id = ?`
	var v model.Venue
	var genres string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genres,
		&v.ImageLink, &v.FacebookLink, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if v.Genres, err = decodeGenres(genres); err != nil {
		return nil, err
	}
	return &v, nil
}

// Update overwrites every mutable attribute of the venue row in place.
// It returns ErrVenueNotFound when the row no longer exists and
// ErrDuplicateName when the new name collides with another venue.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	genres, err := encodeGenres(v.Genres)
	if err != nil {
		return err
	}
	const q = `UPDATE venues
               SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?,
                   image_link = ?, facebook_link = ?, website = ?, seeking_talent = ?, seeking_description = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, genres,
		v.ImageLink, v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription,
		v.ID,
	)
	if err != nil {
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either the row is gone or the values are identical; tell them apart.
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, v.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVenueNotFound
			}
			return err
		}
	}
	return nil
}

// DeleteByID removes the venue row. Venues with dependent shows are
// protected by the foreign key, which surfaces here as ErrConflict.
func (r *VenueRepo) DeleteByID(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}
