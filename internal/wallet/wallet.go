// Package wallet derives Solana-compatible wallets deterministically from a
// user identifier and the process-wide server secret. Nothing here touches
// storage or the network: the same inputs always reproduce the same keypair,
// so the keypair itself is never persisted anywhere.
package wallet

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/mr-tron/base58"

	"github.com/walletgate/walletgate/internal/common"
	"github.com/walletgate/walletgate/internal/identity"
)

// SeedSize is the digest length fed into ed25519 key expansion.
const SeedSize = 32

// Wallet bundles the deterministic key material for one identifier.
//
// PrivateKey is the 64-byte ed25519 expanded form (seed || public key).
// Address is the base58 rendering of the public key, which is what Solana
// tooling displays and what may safely reach the client.
type Wallet struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
	Seed       [SeedSize]byte
	Address    string
}

// SeedHex returns the lowercase hex form of the seed.
func (w *Wallet) SeedHex() string {
	return hex.EncodeToString(w.Seed[:])
}

// Deriver turns identifiers into wallets. The embedded secret is fixed at
// construction and never mutated afterwards.
type Deriver struct {
	secret []byte
}

// NewDeriver constructs a Deriver. An empty secret is a misconfiguration and
// is rejected outright rather than silently defaulted.
func NewDeriver(secret []byte) (*Deriver, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty server secret", common.ErrInvalidInput)
	}
	return &Deriver{secret: secret}, nil
}

// DeriveSeed hashes identifier || secret || flow label into a 32-byte seed.
//
// The concatenation order and the label strings are a frozen wire format:
// changing either re-keys every wallet ever derived. The flow label keeps
// the email and phone flows from colliding on identical identifier strings.
func (d *Deriver) DeriveSeed(normalizedID string, flow identity.Flow) ([SeedSize]byte, error) {
	var seed [SeedSize]byte

	if normalizedID == "" {
		return seed, fmt.Errorf("%w: empty identifier", common.ErrInvalidInput)
	}

	h := sha256.New()
	h.Write([]byte(normalizedID))
	h.Write(d.secret)
	h.Write([]byte(flow))
	copy(seed[:], h.Sum(nil))

	return seed, nil
}

// DeriveKeypair expands a seed into an ed25519 keypair. Pure function:
// identical seed, byte-identical keys.
func DeriveKeypair(seed [SeedSize]byte) (ed25519.PublicKey, ed25519.PrivateKey) {
	priv := ed25519.NewKeyFromSeed(seed[:])
	pub := priv.Public().(ed25519.PublicKey)
	return pub, priv
}

// Derive normalizes the identifier for its flow and produces the full
// wallet: seed, keypair, and base58 address.
func (d *Deriver) Derive(rawID string, flow identity.Flow) (*Wallet, error) {
	id := identity.Normalize(rawID, flow)

	seed, err := d.DeriveSeed(id, flow)
	if err != nil {
		return nil, err
	}

	pub, priv := DeriveKeypair(seed)

	return &Wallet{
		PublicKey:  pub,
		PrivateKey: priv,
		Seed:       seed,
		Address:    base58.Encode(pub),
	}, nil
}

var seedHexRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// ValidSeedHex reports whether s is exactly 64 hexadecimal characters, the
// textual form of a 32-byte seed. Used to vet externally supplied seed
// material independent of derivation.
func ValidSeedHex(s string) bool {
	return seedHexRe.MatchString(s)
}
