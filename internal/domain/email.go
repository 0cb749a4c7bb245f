package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

var ErrInvalidEmail = errors.New("invalid email address")

// NormalizeEmail lower-cases the address and converts its domain to ASCII
// (punycode) so the same mailbox always compares equal.
func NormalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	at := strings.LastIndex(raw, "@")
	if at <= 0 || at == len(raw)-1 {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	host, err := idna.Lookup.ToASCII(strings.ToLower(raw[at+1:]))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidEmail, raw, err)
	}
	return strings.ToLower(raw[:at]) + "@" + host, nil
}
