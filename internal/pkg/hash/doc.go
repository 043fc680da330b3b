// Package hash hashes and verifies secrets. Callers depend on the Hash
// interface; the bcrypt and argon2id drivers behind it are selected through
// configuration. Both mix a configured pepper into the plaintext before
// hashing, so a leaked database alone is not enough to crack passwords.
package hash
