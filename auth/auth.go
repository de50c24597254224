// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
)

// Credentials holds the expected basic auth username and password for
// the pre-launch holding page. Comparison is constant time.
type Credentials struct {
	userSum [sha256.Size]byte
	passSum [sha256.Size]byte
}

func NewCredentials(username, password string) *Credentials {
	return &Credentials{
		userSum: sha256.Sum256([]byte(username)),
		passSum: sha256.Sum256([]byte(password)),
	}
}

// Check reports whether the request carries matching basic auth
// credentials. Hashing first keeps the comparison constant time even
// when lengths differ.
func (c *Credentials) Check(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	userSum := sha256.Sum256([]byte(user))
	passSum := sha256.Sum256([]byte(pass))
	userOK := subtle.ConstantTimeCompare(userSum[:], c.userSum[:]) == 1
	passOK := subtle.ConstantTimeCompare(passSum[:], c.passSum[:]) == 1
	return userOK && passOK
}
