package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"filmoteca/internal/models"
	"filmoteca/internal/shared"

	"golang.org/x/time/rate"
)

// defaultRequestRate limits how fast the client hits the API, requests per second.
const defaultRequestRate = 10

// MovieService implements [Service] against a remote collection endpoint.
type MovieService struct {
	baseURL    string
	tokens     TokenFunc
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewMovieService creates a movie API client for the given base URL.
// The token function must be provided; the HTTP client defaults to
// [http.DefaultClient].
func NewMovieService(baseURL string, tokens TokenFunc, client *http.Client) (*MovieService, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: API base URL must be set", shared.ErrInvalidConfig)
	}
	if tokens == nil {
		return nil, fmt.Errorf("%w: token source must be provided", shared.ErrMissingCredentials)
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &MovieService{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestRate), 1),
	}, nil
}

// apiError is the optional error payload the server attaches to non-2xx
// responses. The message may arrive under either field name.
type apiError struct {
	Erro    string `json:"erro"`
	Message string `json:"message"`
}

// serverMessage extracts the server-supplied error message from a response
// body, preferring "erro" over "message". Returns "" when neither is present.
func serverMessage(body []byte) string {
	var payload apiError
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Erro != "" {
		return payload.Erro
	}
	return payload.Message
}

// do performs an authenticated request, acquiring a fresh token first, and
// returns the status code and raw response body.
func (s *MovieService) do(ctx context.Context, method, endpoint string, body any) (int, []byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limiter: %w", err)
	}

	token, err := s.tokens(ctx)
	if err != nil {
		return 0, nil, err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, data, nil
}

// List retrieves the collection with an authenticated GET. A 401 or 403 is
// reported as [shared.ErrUnauthorized], distinct from other failures; any
// other non-2xx becomes a [StatusError]. On success the returned slice is
// exactly the server's sequence, in order.
func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	status, body, err := s.do(ctx, http.MethodGet, "/movies", nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", shared.ErrUnauthorized, status)
	}
	if status < 200 || status >= 300 {
		return nil, &StatusError{Code: status, Message: serverMessage(body)}
	}

	var movies []models.Movie
	if err := json.Unmarshal(body, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movie list: %w", err)
	}

	return movies, nil
}

// Create validates the draft and submits it with an authenticated POST.
// An incomplete draft fails with [shared.ErrValidation] before any network
// call. On a non-2xx response the server's own message, when present, is
// surfaced verbatim through the returned [StatusError].
func (s *MovieService) Create(ctx context.Context, draft models.Draft) (*models.Movie, error) {
	if v := draft.Validate(); !v.Valid() {
		return nil, shared.ErrValidation
	}

	status, body, err := s.do(ctx, http.MethodPost, "/movies", draft.Payload())
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, &StatusError{Code: status, Message: serverMessage(body)}
	}

	var movie models.Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, fmt.Errorf("failed to decode created movie: %w", err)
	}

	return &movie, nil
}

// Delete removes a record with an authenticated DELETE. Any 2xx status,
// 204 No Content included, counts as success.
func (s *MovieService) Delete(ctx context.Context, id int64) error {
	status, body, err := s.do(ctx, http.MethodDelete, fmt.Sprintf("/movies/%d", id), nil)
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		return &StatusError{Code: status, Message: serverMessage(body)}
	}

	return nil
}
