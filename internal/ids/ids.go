// Package ids converts identifiers between their structured form and the
// canonical string stored in the document store.
package ids

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrFormat is returned when a string is not a valid identifier
var ErrFormat = errors.New("malformed identifier")

// ToPersisted returns the canonical uppercase string form of id.
func ToPersisted(id uuid.UUID) string {
	return strings.ToUpper(id.String())
}

// Parse reads an identifier from its string form, in any letter case.
func Parse(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %v", ErrFormat, s, err)
	}
	return id, nil
}

// Normalize rewrites a caller-supplied identifier into its persisted form.
func Normalize(s string) (string, error) {
	id, err := Parse(s)
	if err != nil {
		return "", err
	}
	return ToPersisted(id), nil
}
