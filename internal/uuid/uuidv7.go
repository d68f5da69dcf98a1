// Package uuid generates the time-ordered identifiers used as primary keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string.
//
// IDs generated by one process are strictly increasing, including within the
// same millisecond (RFC 9562 method 1, a 12-bit sequence in rand_a). Their
// string form therefore sorts in creation order, which the spread store uses
// to break ORDER BY ties.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Random source failure; a v4 id keeps inserts working.
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lowercase form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
