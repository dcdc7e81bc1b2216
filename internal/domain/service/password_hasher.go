// Package service defines the interfaces the account and job usecases depend on for
// password hashing, token handling and input validation.
package service

// PasswordHasher turns account passwords into stored hashes and checks login attempts against them.
type PasswordHasher interface {
	// Hash returns a salted hash of password, suitable for User.PasswordHash.
	Hash(password string) (string, error)

	// Check reports whether password matches a hash previously returned by Hash.
	Check(password, hash string) bool
}
