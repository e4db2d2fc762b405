// Package cryptox expands the process-wide server secret into purpose-bound
// subkeys.
package cryptox

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SigningKeyInfo labels the HKDF expansion that produces the session token
// signing key.
const SigningKeyInfo = "walletgate/session-token-signing"

// SubkeySize is the length of every expanded subkey, in bytes.
const SubkeySize = 32

// Subkey expands the server secret into a purpose-bound 32-byte key using
// HKDF-SHA256. Distinct info labels yield independent keys, so the raw
// secret never serves two cryptographic purposes directly.
//
// Example:
//
//	key, err := cryptox.Subkey(secret, cryptox.SigningKeyInfo)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Subkey(secret []byte, info string) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, nil, []byte(info))

	key := make([]byte, SubkeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}

	return key, nil
}
