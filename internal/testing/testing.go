// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"

	"filmoteca/internal/models"
)

// MockService is a configurable test double for [services.Service]
type MockService struct {
	Movies    []models.Movie
	Created   *models.Movie
	ListErr   error
	CreateErr error
	DeleteErr error

	ListCalls   int
	CreateCalls int
	DeleteCalls int
	DeletedIDs  []int64
}

func (m *MockService) List(ctx context.Context) ([]models.Movie, error) {
	m.ListCalls++
	return m.Movies, m.ListErr
}

func (m *MockService) Create(ctx context.Context, draft models.Draft) (*models.Movie, error) {
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return m.Created, nil
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	m.DeleteCalls++
	m.DeletedIDs = append(m.DeletedIDs, id)
	return m.DeleteErr
}

// StaticToken returns a TokenFunc-shaped closure yielding a fixed token.
func StaticToken(token string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		return token, nil
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = &FCloser{}
