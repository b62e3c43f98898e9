package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores OAuth access tokens keyed by session id.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a session with its access token.
func (r *SessionRepository) Create(id, accessToken string, ttl time.Duration) error {
	query := `
		INSERT INTO sessions (id, access_token, expires_at)
		VALUES (?, ?, ?)
	`
	_, err := r.db.Exec(query, id, accessToken, time.Now().Add(ttl).UTC())
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetToken returns the access token for a live session.
func (r *SessionRepository) GetToken(id string) (string, error) {
	query := `
		SELECT access_token, expires_at FROM sessions WHERE id = ?
	`
	var token string
	var expiresAt time.Time
	err := r.db.QueryRow(query, id).Scan(&token, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query session: %w", err)
	}

	if time.Now().After(expiresAt) {
		return "", ErrSessionNotFound
	}
	return token, nil
}

// Delete removes a session.
func (r *SessionRepository) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes all expired sessions and returns the count.
func (r *SessionRepository) DeleteExpired() (int64, error) {
	res, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
