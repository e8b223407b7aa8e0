package api

import (
	"fmt"
	"net/http"
)

// ListBooks fetches the full catalog. Filtering, sorting, and pagination are
// applied client-side by the caller.
func (c *Client) ListBooks() ([]Book, error) {
	var books []Book
	if err := c.do(http.MethodGet, c.url("books"), nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches one book by ID. Returns ErrNotFound if absent.
func (c *Client) GetBook(id string) (*Book, error) {
	var b Book
	if err := c.do(http.MethodGet, c.url("books", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// BooksByGenre fetches the books in one genre.
func (c *Client) BooksByGenre(genreID string) ([]Book, error) {
	var books []Book
	if err := c.do(http.MethodGet, c.url("books", "genre", genreID), nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook adds a book record.
func (c *Client) CreateBook(p BookPayload) (*Book, error) {
	var b Book
	if err := c.do(http.MethodPost, c.url("books"), p, &b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return &b, nil
}

// UpdateBook replaces the record for the given ID.
func (c *Client) UpdateBook(id string, p BookPayload) (*Book, error) {
	var b Book
	if err := c.do(http.MethodPut, c.url("books", id), p, &b); err != nil {
		return nil, fmt.Errorf("update book %s: %w", id, err)
	}
	return &b, nil
}

// DeleteBook removes a book record.
func (c *Client) DeleteBook(id string) error {
	if err := c.do(http.MethodDelete, c.url("books", id), nil, nil); err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	return nil
}
