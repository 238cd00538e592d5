package repository

import "encoding/json"

// Genre lists are stored JSON-encoded in a single column so their
// order survives the round trip.

func encodeGenres(genres []string) (string, error) {
	if genres == nil {
		genres = []string{}
	}
	b, err := json.Marshal(genres)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeGenres(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var genres []string
	if err := json.Unmarshal([]byte(raw), &genres); err != nil {
		return nil, err
	}
	return genres, nil
}
