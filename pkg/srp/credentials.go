package srp

import (
	"crypto/sha1" //nolint:gosec // protocol hash
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/fzdarsky/srp6go/pkg/protocol"
)

// GenerateUserSecrets derives a fresh salt and password verifier for a
// new user (or a password change). The returned record is what the
// server persists; the password and the intermediate private key x
// never leave this function.
func GenerateUserSecrets(p *Params, username, password string, opts ...Option) (*protocol.UserDetails, error) {
	o := applyOptions(opts)

	salt := make([]byte, p.SaltLength)
	if _, err := io.ReadFull(o.random, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	if o.hardened {
		password = stretchPassword(password, salt)
	}
	x := derivePrivateKey(username, password, salt)
	v := computeVerifier(p, x)
	x.clear()

	return &protocol.UserDetails{
		Username: username,
		Salt:     salt,
		Verifier: v.PadBE(p.KeyLength),
	}, nil
}

// ComputeVerifier recomputes v = g^x mod N for an existing salt. Useful
// when the verifier is not stored but derived on demand from a
// device-local password source.
func ComputeVerifier(p *Params, username, password string, salt []byte) []byte {
	x := derivePrivateKey(username, password, salt)
	v := computeVerifier(p, x)
	x.clear()
	return v.PadBE(p.KeyLength)
}

// PBKDF2Rounds is the iteration count for the hardened derivation
// variant enabled by WithHardenedPasswords.
const PBKDF2Rounds = 10000

// stretchPassword applies the PBKDF2 pre-hash of the hardened variant.
// This deviates from the RFCs: a stock SRP peer will not interoperate,
// both ends must opt in. Grounded use case: deployments that control
// client and server and want offline-cracking resistance for leaked
// verifier databases.
func stretchPassword(password string, salt []byte) string {
	stretched := pbkdf2.Key([]byte(password), salt, PBKDF2Rounds, HashLength, sha1.New)
	out := string(stretched)
	wipeBytes(stretched)
	return out
}
