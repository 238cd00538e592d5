package repository

import (
	"context"
	"database/sql"
	"errors"

	"gig-directory/internal/model"
)

// ArtistSummary is the listing/search projection of an artist. The
// upcoming-show count is only populated by SearchByName; the flat
// listing page shows names alone.
type ArtistSummary struct {
	ID               uint64
	Name             string
	NumUpcomingShows int
}

// ArtistRepo manages persistence for artists. There is no delete;
// artists are only ever created and edited.
type ArtistRepo struct {
	db *sql.DB
}

func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// List returns every artist as an (id, name) pair ordered by name.
func (r *ArtistRepo) List(ctx context.Context) ([]ArtistSummary, error) {
	const q = `SELECT id, name FROM artists ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ArtistSummary
	for rows.Next() {
		var a ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchByName performs a case-insensitive substring match on artist
// names, each hit annotated with its upcoming-show count.
func (r *ArtistRepo) SearchByName(ctx context.Context, term, now string) ([]ArtistSummary, error) {
	const q = `SELECT a.id, a.name, COUNT(s.id)
               FROM artists a
               LEFT JOIN shows s ON s.artist_id = a.id AND s.start_time > ?
               WHERE LOWER(a.name) LIKE ?
               GROUP BY a.id, a.name
               ORDER BY a.name`
	rows, err := r.db.QueryContext(ctx, q, now, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ArtistSummary
	for rows.Next() {
		var a ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.NumUpcomingShows); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new artist and assigns the generated ID back to the
// struct. A duplicate name is reported as ErrDuplicateName.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	genres, err := encodeGenres(a.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO artists
               (name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, genres,
		a.ImageLink, a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID retrieves an artist by its ID. It returns ErrArtistNotFound
// if there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT id, name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description
               FROM artists WHERE id = ?`
	var a model.Artist
	var genres string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.ImageLink, &a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	if a.Genres, err = decodeGenres(genres); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update overwrites every mutable attribute of the artist row in place.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	genres, err := encodeGenres(a.Genres)
	if err != nil {
		return err
	}
	const q = `UPDATE artists
               SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
                   image_link = ?, facebook_link = ?, website = ?, seeking_venue = ?, seeking_description = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, genres,
		a.ImageLink, a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
		a.ID,
	)
	if err != nil {
		return classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, a.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrArtistNotFound
			}
			return err
		}
	}
	return nil
}
