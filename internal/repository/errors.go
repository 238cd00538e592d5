// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios instead
// of treating every database error the same way: a missing row, a
// duplicate name and a blocked delete each get their own value, while
// anything else (connectivity, syntax) propagates untouched.
package repository

import (
	"errors"
	"strings"
)

// ErrVenueNotFound indicates that a venue was not located in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound indicates that an artist was not located in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrDuplicateName is returned when an insert or update violates the
// unique constraint on a venue or artist name. Handlers should surface
// this with a message naming the entity rather than a generic failure.
var ErrDuplicateName = errors.New("name already exists")

// ErrConflict is returned when a write cannot proceed because of
// dependent rows, such as deleting a venue that still has shows, or
// booking a show against an id that does not exist. Handlers should
// translate this into a client error rather than a 500.
var ErrConflict = errors.New("conflict")

// classify maps driver-level constraint errors onto the sentinels
// above. MySQL reports duplicates as error 1062 and foreign key
// violations as 1451/1452; the sqlite driver used in tests reports the
// constraint name in the message.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "1062"), strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicateName
	case strings.Contains(msg, "1451"), strings.Contains(msg, "1452"),
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrConflict
	}
	return err
}
