package services

import (
	"context"
	"fmt"

	"filmoteca/internal/models"
)

// TokenFunc returns a fresh bearer token for an authenticated API call.
// Injected by the session provider so this package never caches credentials.
type TokenFunc func(ctx context.Context) (string, error)

// Service defines the interface for the movie collection API client.
type Service interface {
	// List retrieves the full collection, in server order.
	List(ctx context.Context) ([]models.Movie, error)

	// Create validates and submits a draft, returning the created record
	// with its server-assigned id.
	Create(ctx context.Context, draft models.Draft) (*models.Movie, error)

	// Delete removes the record with the given id from the collection.
	Delete(ctx context.Context, id int64) error
}

// StatusError is a non-2xx API response, carrying the HTTP status code and
// the server-supplied error message when one was present in the body.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}
