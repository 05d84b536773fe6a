package admin

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/aanand-mishra/student-records-api/internal/config"
)

// PasswordEncoder turns a raw password into its stored form and checks a
// login attempt against it.
type PasswordEncoder interface {
	Encode(raw string) (string, error)
	Matches(raw, encoded string) bool
}

// PlainEncoder stores passwords verbatim and compares them for exact
// equality. It is the default to stay compatible with existing admin rows.
// Switch admin.password_encoding to bcrypt for any real deployment.
type PlainEncoder struct{}

func (PlainEncoder) Encode(raw string) (string, error) { return raw, nil }

func (PlainEncoder) Matches(raw, encoded string) bool {
	return subtle.ConstantTimeCompare([]byte(raw), []byte(encoded)) == 1
}

// BcryptEncoder stores salted bcrypt hashes.
type BcryptEncoder struct {
	Cost int
}

func (e BcryptEncoder) Encode(raw string) (string, error) {
	cost := e.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (BcryptEncoder) Matches(raw, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}

// NewEncoder returns the encoder named by admin.password_encoding.
func NewEncoder(name string) (PasswordEncoder, error) {
	switch name {
	case config.PasswordPlain, "":
		return PlainEncoder{}, nil
	case config.PasswordBcrypt:
		return BcryptEncoder{}, nil
	}
	return nil, errors.New("admin: unknown password encoding " + name)
}
