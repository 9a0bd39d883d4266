package domain

import "strings"

// Identity is an opaque user handle picked from the ledger's user list.
type Identity string

func (i Identity) IsZero() bool {
	return strings.TrimSpace(string(i)) == ""
}

func (i Identity) String() string {
	return string(i)
}
