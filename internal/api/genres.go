package api

import "net/http"

// ListGenres fetches all genres. The backend route is singular (/genre).
func (c *Client) ListGenres() ([]Genre, error) {
	var genres []Genre
	if err := c.do(http.MethodGet, c.url("genre"), nil, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

// GetGenre fetches one genre by ID.
func (c *Client) GetGenre(id string) (*Genre, error) {
	var g Genre
	if err := c.do(http.MethodGet, c.url("genre", id), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
