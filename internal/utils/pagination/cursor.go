package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidToken is returned for tokens that were not produced by Encode.
var ErrInvalidToken = errors.New("invalid pagination token")

// Cursor is the keyset position of the last row served, for listings
// ordered by created_at DESC, id DESC.
type Cursor struct {
	ID        string `json:"id"`
	CreatedNs int64  `json:"ts,omitempty"`
}

// At builds the cursor that resumes after the given row.
func At(id string, createdAt time.Time) Cursor {
	return Cursor{ID: id, CreatedNs: createdAt.UnixNano()}
}

// IsZero reports whether the cursor points at the first page.
func (c Cursor) IsZero() bool {
	return c.ID == "" || c.CreatedNs == 0
}

// CreatedAt is the row timestamp the cursor was taken at, in UTC.
func (c Cursor) CreatedAt() time.Time {
	return time.Unix(0, c.CreatedNs).UTC()
}

// Encode converts a Cursor into an opaque URL-safe token.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Decode parses a token produced by Encode.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidToken
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil || c.ID == "" {
		return Cursor{}, ErrInvalidToken
	}
	return c, nil
}
