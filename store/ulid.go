// ABOUTME: ULID generation helper using crypto/rand for slot revision ids.
// ABOUTME: Centralizes ULID creation so all backends use the same entropy source.
package store

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// NewRev generates a new revision id.
func NewRev() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
