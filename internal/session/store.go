package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/oauth2"
)

// Store persists OAuth tokens in a SQLite database, one row per provider domain.
type Store struct {
	db *sql.DB
}

const createTokensTable = `
	CREATE TABLE IF NOT EXISTS tokens (
		domain TEXT PRIMARY KEY,
		access_token TEXT NOT NULL,
		refresh_token TEXT,
		token_type TEXT,
		expiry TIMESTAMP
	)
`

// OpenStore opens (creating if necessary) the session database at the
// specified path. The path can be ":memory:" for an in-memory store.
func OpenStore(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping session database: %w", err)
	}

	if _, err := db.Exec(createTokensTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tokens table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveToken upserts the token for a provider domain.
func (s *Store) SaveToken(domain string, token *oauth2.Token) error {
	query := `
		INSERT INTO tokens (domain, access_token, refresh_token, token_type, expiry)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(domain) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type = excluded.token_type,
			expiry = excluded.expiry
	`

	_, err := s.db.Exec(query, domain, token.AccessToken, token.RefreshToken, token.TokenType, token.Expiry)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// LoadToken retrieves the persisted token for a provider domain.
// Returns (nil, nil) when no token has been saved.
func (s *Store) LoadToken(domain string) (*oauth2.Token, error) {
	query := `
		SELECT access_token, refresh_token, token_type, expiry
		FROM tokens
		WHERE domain = ?
	`

	var (
		accessToken  string
		refreshToken sql.NullString
		tokenType    sql.NullString
		expiry       sql.NullTime
	)

	err := s.db.QueryRow(query, domain).Scan(&accessToken, &refreshToken, &tokenType, &expiry)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query token: %w", err)
	}

	token := &oauth2.Token{AccessToken: accessToken}
	if refreshToken.Valid {
		token.RefreshToken = refreshToken.String
	}
	if tokenType.Valid {
		token.TokenType = tokenType.String
	}
	if expiry.Valid {
		token.Expiry = expiry.Time
	} else {
		token.Expiry = time.Time{}
	}

	return token, nil
}

// DeleteToken removes the persisted token for a provider domain.
func (s *Store) DeleteToken(domain string) error {
	if _, err := s.db.Exec("DELETE FROM tokens WHERE domain = ?", domain); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
