// Package uuid wraps google/uuid with the ID conventions used by the API.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string for use as a primary key.
// Rows inserted close together stay close together in the index.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lower-case form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid reports whether s is a well-formed UUID.
func IsValid(s string) bool {
	return googleuuid.Validate(s) == nil
}
